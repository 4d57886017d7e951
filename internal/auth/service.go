// Package auth handles user accounts: password hashing, JWT access tokens,
// and the request middleware guarding protected routes.
package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hadithdb/hadith-api/internal/entities"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInactiveUser       = errors.New("inactive user")
)

// Service registers users and exchanges credentials for access tokens.
type Service struct {
	db         *gorm.DB
	tokens     *TokenManager
	bcryptCost int
}

func NewService(db *gorm.DB, tokens *TokenManager, bcryptCost int) *Service {
	return &Service{db: db, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a new active user. Emails are unique.
func (s *Service) Register(email, password, name string) (*entities.User, error) {
	var existing entities.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Email:          email,
		HashedPassword: hash,
		Name:           name,
		IsActive:       true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks credentials and issues an access token. Credential failures
// are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, error) {
	var user entities.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("load user: %w", err)
	}
	if !CheckPassword(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrInactiveUser
	}
	return s.tokens.CreateAccessToken(user.ID)
}

// GetUser loads a user by ID.
func (s *Service) GetUser(id uint) (*entities.User, error) {
	var user entities.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
