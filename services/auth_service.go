package services

import (
	"errors"
	"strings"
	"time"

	"ecomm/entity"
	"ecomm/repository"
	"ecomm/utils"
)

var (
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user and returns a fresh token for it.
func (s *AuthService) Register(username, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrUserExists
	}

	hash, salt, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &entity.User{
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         entity.RoleCustomer,
		Tier:         entity.TierNormal,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies the password against the stored salted digest.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetUser(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) issueToken(user *entity.User) (string, error) {
	return utils.GenerateToken(user.ID, user.Username, user.Role, user.Tier, s.jwtSecret, s.jwtTTL)
}
