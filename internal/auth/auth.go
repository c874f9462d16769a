// Package auth handles account registration, login, and JWT issuance/
// verification, grounded on the teacher's internal/services/auth_service.go
// and internal/middleware/auth.go.
package auth

import (
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/treechess/backend/internal/store"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)

var (
	ErrInvalidUsername    = fmt.Errorf("username must be 3-50 alphanumeric characters, hyphens or underscores")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least 8 characters")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
)

// UserStore is the persistence dependency Service needs, narrowed to an
// interface (mirroring the teacher's repository.UserRepository) so Service
// can be unit-tested against a fake instead of a live database.
type UserStore interface {
	Create(username, passwordHash string) (*store.User, error)
	GetByUsername(username string) (*store.User, error)
	GetByID(id string) (*store.User, error)
}

// Service issues and validates JWTs around bcrypt-hashed passwords.
type Service struct {
	users     UserStore
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewService(users UserStore, jwtSecret string, jwtExpiry time.Duration) *Service {
	return &Service{users: users, jwtSecret: []byte(jwtSecret), jwtExpiry: jwtExpiry}
}

// AuthResponse is what Register/Login return to the caller.
type AuthResponse struct {
	Token string     `json:"token"`
	User  store.User `json:"user"`
}

func (s *Service) Register(username, password string) (*AuthResponse, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to hash password: %w", err)
	}

	user, err := s.users.Create(username, string(hash))
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: *user}, nil
}

func (s *Service) Login(username, password string) (*AuthResponse, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if err == store.ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: *user}, nil
}

func (s *Service) generateToken(user *store.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(s.jwtExpiry).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the subject (user id) encoded in tokenStr.
func (s *Service) ValidateToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrUnauthorized
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrUnauthorized
	}
	return sub, nil
}

func (s *Service) GetUserByID(id string) (*store.User, error) {
	return s.users.GetByID(id)
}
