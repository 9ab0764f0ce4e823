package auth

import (
	"context"
	"testing"

	"eventspace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID string, role string) (string, error) {
	return "token-" + userID + "-" + role, nil
}

func TestRegister_Organizer(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "aida@univ.edu").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Aida",
		Email:    "Aida@Univ.edu",
		Password: "secret123",
		Role:     "organizer",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleOrganizer, user.Role)
	assert.Equal(t, domain.AccountActive, user.AccountStatus)
	assert.Equal(t, "aida@univ.edu", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.Contains(t, token, user.ID)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	user, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Sneaky",
		Email:    "sneaky@univ.edu",
		Password: "secret123",
		Role:     "admin",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "aida@univ.edu").
		Return(&domain.User{ID: "usr-1", Email: "aida@univ.edu"}, nil)

	user, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Aida",
		Email:    "aida@univ.edu",
		Password: "secret123",
		Role:     "student",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := &domain.User{
		ID:            "usr-1",
		Email:         "aida@univ.edu",
		PasswordHash:  string(hash),
		Role:          domain.RoleLecturer,
		AccountStatus: domain.AccountActive,
	}
	users.On("GetByEmail", mock.Anything, "aida@univ.edu").Return(stored, nil)

	user, token, err := svc.Login(context.Background(), LoginRequest{Email: "aida@univ.edu", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "usr-1", user.ID)
	assert.Equal(t, "token-usr-1-lecturer", token)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := &domain.User{
		ID:            "usr-1",
		Email:         "aida@univ.edu",
		PasswordHash:  string(hash),
		AccountStatus: domain.AccountActive,
	}
	users.On("GetByEmail", mock.Anything, "aida@univ.edu").Return(stored, nil)

	user, _, err := svc.Login(context.Background(), LoginRequest{Email: "aida@univ.edu", Password: "wrong"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	users.On("GetByEmail", mock.Anything, "ghost@univ.edu").Return(nil, gorm.ErrRecordNotFound)

	user, _, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@univ.edu", Password: "whatever"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	stored := &domain.User{
		ID:            "usr-1",
		Email:         "aida@univ.edu",
		AccountStatus: domain.AccountDisabled,
	}
	users.On("GetByEmail", mock.Anything, "aida@univ.edu").Return(stored, nil)

	user, _, err := svc.Login(context.Background(), LoginRequest{Email: "aida@univ.edu", Password: "secret123"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByID", mock.Anything, "usr-1").Return(&domain.User{ID: "usr-1", PasswordHash: string(hash)}, nil)

	err := svc.ChangePassword(context.Background(), "usr-1", ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newsecret",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
