package complaint

import (
	"context"
	"errors"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ComplaintRepository contract interface
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	FindByID(ctx context.Context, id string) (domain.Complaint, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Complaint, error)
	Update(ctx context.Context, complaint *domain.Complaint) error
}

type complaintService struct {
	complaintRepo ComplaintRepository
}

func NewComplaintService(complaintRepo ComplaintRepository) *complaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
	}
}

func (s *complaintService) CreateComplaint(ctx context.Context, userID uint, orderID uint, category, subject, message string) (domain.Complaint, error) {
	if subject == "" {
		logger.Error("invalid complaint: subject is required")
		return domain.Complaint{}, errors.New("subject is required")
	}

	complaint := domain.Complaint{
		ID:       "CMP-" + uuid.NewString(),
		UserID:   userID,
		OrderID:  orderID,
		Category: category,
		Subject:  subject,
		Status:   domain.ComplaintStatusOpen,
		Messages: datatypes.JSONMap{
			"thread": []any{messageEntry("customer", message)},
		},
	}

	if err := s.complaintRepo.Create(ctx, &complaint); err != nil {
		logger.Error("failed to create complaint", err)
		return domain.Complaint{}, err
	}

	logger.Info("complaint created", "complaint_id", complaint.ID, "user_id", userID)

	return complaint, nil
}

func (s *complaintService) GetComplaint(ctx context.Context, id string, userID uint) (domain.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find complaint", err)
		return domain.Complaint{}, err
	}

	if complaint.UserID != userID {
		logger.Error("complaint access denied")
		return domain.Complaint{}, errors.New("complaint not found")
	}

	return complaint, nil
}

func (s *complaintService) GetUserComplaints(ctx context.Context, userID uint) ([]domain.Complaint, error) {
	complaints, err := s.complaintRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to find user complaints", err)
		return nil, err
	}
	return complaints, nil
}

// AddMessage appends one message to the complaint thread.
func (s *complaintService) AddMessage(ctx context.Context, id string, userID uint, sender, message string) (domain.Complaint, error) {
	if message == "" {
		logger.Error("invalid complaint message: body is required")
		return domain.Complaint{}, errors.New("message is required")
	}

	complaint, err := s.GetComplaint(ctx, id, userID)
	if err != nil {
		return domain.Complaint{}, err
	}

	if complaint.Status == domain.ComplaintStatusResolved {
		logger.Error("cannot add message to a resolved complaint")
		return domain.Complaint{}, errors.New("complaint already resolved")
	}

	thread, _ := complaint.Messages["thread"].([]any)
	thread = append(thread, messageEntry(sender, message))
	complaint.Messages["thread"] = thread

	if err := s.complaintRepo.Update(ctx, &complaint); err != nil {
		logger.Error("failed to update complaint thread", err)
		return domain.Complaint{}, err
	}

	return complaint, nil
}

func (s *complaintService) Escalate(ctx context.Context, id string, userID uint) (domain.Complaint, error) {
	complaint, err := s.GetComplaint(ctx, id, userID)
	if err != nil {
		return domain.Complaint{}, err
	}

	if complaint.Status != domain.ComplaintStatusOpen {
		logger.Error("only open complaints can be escalated")
		return domain.Complaint{}, errors.New("complaint cannot be escalated")
	}

	complaint.Status = domain.ComplaintStatusEscalated
	if err := s.complaintRepo.Update(ctx, &complaint); err != nil {
		logger.Error("failed to escalate complaint", err)
		return domain.Complaint{}, err
	}

	logger.Info("complaint escalated", "complaint_id", id)
	return complaint, nil
}

func (s *complaintService) Resolve(ctx context.Context, id string, userID uint) (domain.Complaint, error) {
	complaint, err := s.GetComplaint(ctx, id, userID)
	if err != nil {
		return domain.Complaint{}, err
	}

	if complaint.Status == domain.ComplaintStatusResolved {
		return complaint, nil
	}

	complaint.Status = domain.ComplaintStatusResolved
	if err := s.complaintRepo.Update(ctx, &complaint); err != nil {
		logger.Error("failed to resolve complaint", err)
		return domain.Complaint{}, err
	}

	logger.Info("complaint resolved", "complaint_id", id)
	return complaint, nil
}

func messageEntry(sender, message string) map[string]any {
	return map[string]any{
		"sender":  sender,
		"message": message,
		"sent_at": time.Now().Format(time.RFC3339),
	}
}
