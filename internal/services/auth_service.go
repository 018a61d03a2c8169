package services

import (
	"errors"
	"fmt"

	"github.com/arogyamitra/backend/internal/dto"
	"github.com/arogyamitra/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Signup creates the user plus a default profile and issues a token.
// Uniqueness is enforced by the email index, not pre-checked; the constraint
// violation maps to ErrEmailTaken.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.db.Create(models.DefaultProfile(user.ID)).Error; err != nil {
		return nil, fmt.Errorf("failed to create default profile: %w", err)
	}

	return s.respond(&user)
}

// Login deliberately returns the same error for unknown email and wrong
// password.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(&user)
}

// Exists reports whether the user row is still present. Used by the request
// gate to reject tokens whose subject has since disappeared.
func (s *AuthService) Exists(userID uuid.UUID) bool {
	var count int64
	s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count)
	return count > 0
}

func (s *AuthService) respond(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}
