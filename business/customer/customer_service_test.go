package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const testResetKey = "0123456789abcdef0123456789abcdef"

type fakeCustomerRepo struct {
	byID    map[uint]domain.Customer
	byEmail map[string]uint
	nextID  uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byID:    make(map[uint]domain.Customer),
		byEmail: make(map[string]uint),
		nextID:  1,
	}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	customer.ID = f.nextID
	f.nextID++
	f.byID[customer.ID] = *customer
	f.byEmail[customer.Email] = customer.ID
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	customer, ok := f.byID[id]
	if !ok {
		return domain.Customer{}, errors.New("customer not found")
	}
	return customer, nil
}

func (f *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return domain.Customer{}, errors.New("customer not found")
	}
	return f.byID[id], nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	if _, ok := f.byID[customer.ID]; !ok {
		return errors.New("customer not found")
	}
	f.byID[customer.ID] = *customer
	f.byEmail[customer.Email] = customer.ID
	return nil
}

func (f *fakeCustomerRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	customer, ok := f.byID[id]
	if !ok {
		return errors.New("customer not found")
	}
	customer.Password = passwordHash
	f.byID[id] = customer
	return nil
}

type fakePrefRepo struct {
	rows map[uint]domain.CustomerPreferences
}

func (f *fakePrefRepo) Get(ctx context.Context, userID uint) (domain.CustomerPreferences, error) {
	row, ok := f.rows[userID]
	if !ok {
		return domain.CustomerPreferences{}, errors.New("preferences not found")
	}
	return row, nil
}

func (f *fakePrefRepo) Upsert(ctx context.Context, row *domain.CustomerPreferences) error {
	f.rows[row.UserID] = *row
	return nil
}

type fakeResetRepo struct {
	codes map[string]string
}

func (f *fakeResetRepo) StoreResetCode(ctx context.Context, email, code string, ttl time.Duration) error {
	f.codes[email] = code
	return nil
}

func (f *fakeResetRepo) ConsumeResetCode(ctx context.Context, email, code string) error {
	stored, ok := f.codes[email]
	if !ok || stored != code {
		return errors.New("reset code not found or expired")
	}
	delete(f.codes, email)
	return nil
}

func testCustomerService(t *testing.T) (*customerService, *fakeCustomerRepo, *fakeResetRepo) {
	t.Helper()
	utils.InitJWT("test-secret")

	customerRepo := newFakeCustomerRepo()
	prefRepo := &fakePrefRepo{rows: make(map[uint]domain.CustomerPreferences)}
	resetRepo := &fakeResetRepo{codes: make(map[string]string)}
	svc := NewCustomerService(customerRepo, prefRepo, resetRepo, validator.New(), testResetKey, time.Hour)
	return svc, customerRepo, resetRepo
}

func register(t *testing.T, svc *customerService) domain.Customer {
	t.Helper()
	created, err := svc.Register(context.Background(), &domain.Customer{
		FullName: "Asha Patil",
		Email:    "asha@example.com",
		Password: "secret123",
		Phone:    "9999999999",
		City:     "Pune",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return created
}

func TestRegister_HashesPasswordAndNormalizes(t *testing.T) {
	svc, repo, _ := testCustomerService(t)

	created := register(t, svc)

	if created.Password != "" {
		t.Error("registration response must not carry the password hash")
	}
	if created.City != "pune" {
		t.Errorf("expected lowercased city, got %q", created.City)
	}
	if created.Role != RoleCustomer {
		t.Errorf("expected customer role, got %q", created.Role)
	}

	stored := repo.byID[created.ID]
	if stored.Password == "secret123" || stored.Password == "" {
		t.Error("stored password must be a hash")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := testCustomerService(t)
	register(t, svc)

	_, err := svc.Register(context.Background(), &domain.Customer{
		FullName: "Other", Email: "asha@example.com", Password: "secret123", Phone: "1",
	})
	if err == nil || err.Error() != "email already exists" {
		t.Errorf("expected email already exists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := testCustomerService(t)
	register(t, svc)

	token, customer, err := svc.Login(context.Background(), "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a JWT")
	}
	if customer.Password != "" {
		t.Error("login response must not carry the password hash")
	}

	if _, _, err := svc.Login(context.Background(), "asha@example.com", "wrong"); err == nil || err.Error() != "invalid credentials" {
		t.Errorf("expected invalid credentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123"); err == nil || err.Error() != "invalid credentials" {
		t.Errorf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestGetPreferences_MissingRowIsEmptyProfile(t *testing.T) {
	svc, _, _ := testCustomerService(t)

	profile, err := svc.GetPreferences(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetPreferences must not error for new users: %v", err)
	}
	if profile.Language != "en" {
		t.Errorf("expected en default language, got %q", profile.Language)
	}
	if len(profile.FavoriteCuisines) != 0 || len(profile.DietaryRestrictions) != 0 {
		t.Error("expected empty profile")
	}
}

func TestUpdatePreferences_RoundTrip(t *testing.T) {
	svc, _, _ := testCustomerService(t)
	created := register(t, svc)

	saved, err := svc.UpdatePreferences(context.Background(), created.ID, domain.PreferenceProfile{
		FavoriteCuisines:    []string{"Hyderabadi"},
		DietaryRestrictions: []string{"vegetarian"},
		Language:            "hi",
	})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if len(saved.FavoriteCuisines) != 1 || saved.FavoriteCuisines[0] != "Hyderabadi" {
		t.Errorf("unexpected cuisines: %v", saved.FavoriteCuisines)
	}

	got, err := svc.GetPreferences(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if got.Language != "hi" {
		t.Errorf("expected hi, got %q", got.Language)
	}
	if len(got.DietaryRestrictions) != 1 || got.DietaryRestrictions[0] != "vegetarian" {
		t.Errorf("unexpected restrictions: %v", got.DietaryRestrictions)
	}
}

func TestUpdatePreferences_RejectsBadLanguageCode(t *testing.T) {
	svc, _, _ := testCustomerService(t)

	_, err := svc.UpdatePreferences(context.Background(), 1, domain.PreferenceProfile{Language: "english"})
	if err == nil || err.Error() != "invalid language code" {
		t.Errorf("expected invalid language code, got %v", err)
	}
}

func TestPasswordReset_RoundTrip(t *testing.T) {
	svc, _, _ := testCustomerService(t)
	register(t, svc)
	ctx := context.Background()

	code, err := svc.ForgotPassword(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if code == "" {
		t.Fatal("expected a reset code for a known email")
	}

	if err := svc.ResetPassword(ctx, code, "newsecret"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, _, err := svc.Login(ctx, "asha@example.com", "newsecret"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "asha@example.com", "secret123"); err == nil {
		t.Error("old password must no longer work")
	}

	// Codes are single use when a token store is present.
	if err := svc.ResetPassword(ctx, code, "anothersecret"); err == nil {
		t.Error("expected reused code to be rejected")
	}
}

func TestForgotPassword_UnknownEmailDoesNotError(t *testing.T) {
	svc, _, _ := testCustomerService(t)

	code, err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("unknown emails must not surface an error: %v", err)
	}
	if code != "" {
		t.Error("unknown emails must not receive a code")
	}
}

func TestResetPassword_GarbageCode(t *testing.T) {
	svc, _, _ := testCustomerService(t)

	if err := svc.ResetPassword(context.Background(), "not-a-real-code", "newsecret"); err == nil {
		t.Error("expected garbage code to be rejected")
	}
}
