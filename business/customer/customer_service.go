package customer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"
	"dabbaMarket/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/pobyzaarif/goshortcute"
)

// CustomerRepository contract interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id uint) (domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// PreferenceRepository contract interface
type PreferenceRepository interface {
	Get(ctx context.Context, userID uint) (domain.CustomerPreferences, error)
	Upsert(ctx context.Context, prefs *domain.CustomerPreferences) error
}

// ResetTokenRepository marks issued password-reset codes so each one is
// usable once. A nil repository disables the single-use check.
type ResetTokenRepository interface {
	StoreResetCode(ctx context.Context, email, code string, ttl time.Duration) error
	ConsumeResetCode(ctx context.Context, email, code string) error
}

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

const resetCodeTTL = 15 * time.Minute

type customerService struct {
	customerRepo CustomerRepository
	prefRepo     PreferenceRepository
	resetRepo    ResetTokenRepository
	validate     *validator.Validate
	resetKey     string
	tokenTTL     time.Duration
}

func NewCustomerService(
	customerRepo CustomerRepository,
	prefRepo PreferenceRepository,
	resetRepo ResetTokenRepository,
	validate *validator.Validate,
	resetKey string,
	tokenTTL time.Duration,
) *customerService {
	return &customerService{
		customerRepo: customerRepo,
		prefRepo:     prefRepo,
		resetRepo:    resetRepo,
		validate:     validate,
		resetKey:     resetKey,
		tokenTTL:     tokenTTL,
	}
}

func (s *customerService) Register(ctx context.Context, customer *domain.Customer) (domain.Customer, error) {
	if err := s.validate.Var(customer.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.Customer{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(customer.Password, "required,min=6"); err != nil {
		logger.Error("Invalid customer password", err)
		return domain.Customer{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existing, err := s.customerRepo.FindByEmail(ctx, customer.Email)
	if err == nil && existing.ID > 0 {
		logger.Error("Email already exists")
		return domain.Customer{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(customer.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.Customer{}, errors.New("failed to hash password")
	}

	newCustomer := domain.Customer{
		FullName: customer.FullName,
		Email:    customer.Email,
		Password: passwordHash,
		Phone:    customer.Phone,
		City:     strings.ToLower(customer.City),
		Role:     RoleCustomer,
	}

	if err := s.customerRepo.Create(ctx, &newCustomer); err != nil {
		logger.Error("Failed to create new customer", err)
		return domain.Customer{}, err
	}

	logger.Info("customer registered", "customer_id", newCustomer.ID)

	newCustomer.Password = ""
	return newCustomer, nil
}

func (s *customerService) Login(ctx context.Context, email, password string) (string, domain.Customer, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid customer credentials", err)
		return "", domain.Customer{}, errors.New("invalid credentials")
	}

	if ok := utils.CheckPassword(password, customer.Password); !ok {
		logger.Error("Customer password incorrect")
		return "", domain.Customer{}, errors.New("invalid credentials")
	}

	userIDStr := strconv.FormatUint(uint64(customer.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, customer.Role, s.tokenTTL)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.Customer{}, errors.New("failed to generate token")
	}

	customer.Password = ""
	return token, customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id uint) (domain.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get customer by ID", err)
		return domain.Customer{}, err
	}

	customer.Password = ""
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, updateData *domain.Customer) (domain.Customer, error) {
	existing, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Customer not found for update", err)
		return domain.Customer{}, err
	}

	if updateData.FullName != "" {
		existing.FullName = updateData.FullName
	}
	if updateData.Phone != "" {
		existing.Phone = updateData.Phone
	}
	if updateData.City != "" {
		existing.City = strings.ToLower(updateData.City)
	}

	if updateData.Email != "" && updateData.Email != existing.Email {
		if err := s.validate.Var(updateData.Email, "required,email"); err != nil {
			logger.Error("Invalid email format", err)
			return domain.Customer{}, errors.New("invalid email format")
		}
		withEmail, err := s.customerRepo.FindByEmail(ctx, updateData.Email)
		if err == nil && withEmail.ID != id {
			logger.Error("Email already exists")
			return domain.Customer{}, errors.New("email already exists")
		}
		existing.Email = updateData.Email
	}

	if err := s.customerRepo.Update(ctx, &existing); err != nil {
		logger.Error("Failed to update customer", err)
		return domain.Customer{}, err
	}

	existing.Password = ""
	return existing, nil
}

// GetPreferences returns the stored taste profile. A customer who never
// saved preferences gets an empty profile, not an error: the recommendation
// path must keep working for new users.
func (s *customerService) GetPreferences(ctx context.Context, userID uint) (domain.PreferenceProfile, error) {
	prefs, err := s.prefRepo.Get(ctx, userID)
	if err != nil {
		logger.Debug("no stored preferences, using empty profile", "user_id", userID)
		return domain.PreferenceProfile{Language: "en"}, nil
	}

	return prefs.Profile(), nil
}

func (s *customerService) UpdatePreferences(ctx context.Context, userID uint, profile domain.PreferenceProfile) (domain.PreferenceProfile, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating preferences")
		return domain.PreferenceProfile{}, fmt.Errorf("context error: %w", err)
	}

	if profile.Language != "" {
		if err := s.validate.Var(profile.Language, "len=2,alpha"); err != nil {
			logger.Error("Invalid language code", err)
			return domain.PreferenceProfile{}, errors.New("invalid language code")
		}
	}

	row := domain.PreferencesRow(userID, profile)
	if err := s.prefRepo.Upsert(ctx, &row); err != nil {
		logger.Error("Failed to save preferences", err)
		return domain.PreferenceProfile{}, err
	}

	logger.Info("preferences updated", "user_id", userID)
	return row.Profile(), nil
}

// ForgotPassword issues an encrypted, time-bound reset code for the account.
// The response does not reveal whether the email exists.
func (s *customerService) ForgotPassword(ctx context.Context, email string) (string, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Warn("password reset requested for unknown email")
		return "", nil
	}

	expAt := time.Now().Add(resetCodeTTL).Unix()
	payload := fmt.Sprintf("%v|%v", customer.Email, expAt)

	encrypted, err := goshortcute.AESCBCEncrypt([]byte(payload), []byte(s.resetKey))
	if err != nil {
		logger.Error("Failed to encrypt reset code", err)
		return "", errors.New("failed to issue reset code")
	}
	code := goshortcute.StringtoBase64Encode(encrypted)

	if s.resetRepo != nil {
		if err := s.resetRepo.StoreResetCode(ctx, customer.Email, code, resetCodeTTL); err != nil {
			logger.Warn("Failed to store reset code, single-use check disabled", "error", err)
		}
	}

	return code, nil
}

// ResetPassword validates the reset code and sets the new password. The
// code carries its own expiry; the token repository additionally enforces
// single use when available.
func (s *customerService) ResetPassword(ctx context.Context, code, newPassword string) error {
	if err := s.validate.Var(newPassword, "required,min=6"); err != nil {
		logger.Error("Invalid new password", err)
		return errors.New("password must be at least 6 characters")
	}

	decoded := goshortcute.StringtoBase64Decode(code)
	decrypted, err := goshortcute.AESCBCDecrypt([]byte(decoded), []byte(s.resetKey))
	if err != nil {
		logger.Error("Failed to decrypt reset code", err)
		return errors.New("invalid or expired reset code")
	}

	parts := strings.Split(decrypted, "|")
	if len(parts) != 2 {
		logger.Error("Malformed reset code payload")
		return errors.New("invalid or expired reset code")
	}

	email := parts[0]
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		logger.Error("Malformed reset code expiry")
		return errors.New("invalid or expired reset code")
	}
	if time.Now().After(time.Unix(ts, 0)) {
		return errors.New("invalid or expired reset code")
	}

	if s.resetRepo != nil {
		if err := s.resetRepo.ConsumeResetCode(ctx, email, code); err != nil {
			logger.Error("Reset code already used or unknown", err)
			return errors.New("invalid or expired reset code")
		}
	}

	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Failed to find customer for password reset", err)
		return errors.New("invalid or expired reset code")
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return errors.New("failed to reset password")
	}

	if err := s.customerRepo.UpdatePassword(ctx, customer.ID, passwordHash); err != nil {
		logger.Error("Failed to update password", err)
		return err
	}

	logger.Info("password reset completed", "customer_id", customer.ID)
	return nil
}
