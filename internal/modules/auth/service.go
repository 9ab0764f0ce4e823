package auth

import (
	"context"
	"errors"
	"strings"

	"eventspace/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates an account for one of the self-service roles. Admin
// accounts are provisioned by the seeder, never through this endpoint.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	role := domain.Role(req.Role)
	if !role.Valid() || role == domain.RoleAdmin {
		return nil, "", ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validateEmailUnique(ctx, email); err != nil {
		return nil, "", err
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         email,
		PasswordHash:  hashed,
		Phone:         req.Phone,
		Role:          role,
		AccountStatus: domain.AccountActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if user.AccountStatus != domain.AccountActive {
		return nil, "", ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	return s.users.Update(ctx, user)
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailAlreadyExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
