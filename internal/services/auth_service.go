package services

import (
	"errors"
	"fmt"
	"time"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long issued tokens stay valid.
const DefaultTokenTTL = 24 * time.Hour

// TokenClaims is the payload of tokens issued by AuthService. The admin
// client reads the same fields without verifying the signature.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// AuthService registers owners and issues the bearer tokens the admin client
// sends with every request.
type AuthService struct {
	users  repositories.UserRepository
	secret []byte
	ttl    time.Duration
	log    *logrus.Logger
}

// NewAuthService creates an AuthService signing tokens with jwtSecret.
func NewAuthService(users repositories.UserRepository, jwtSecret string, logger *logrus.Logger) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(jwtSecret),
		ttl:    DefaultTokenTTL,
		log:    logger,
	}
}

// RegisterUser stores user with a bcrypt hash in place of the plain password.
// Username and email must both be unused.
func (s *AuthService) RegisterUser(user *models.User) error {
	if taken, err := s.users.GetByUsername(user.Username); err == nil && taken != nil {
		return fmt.Errorf("username '%s' %w", user.Username, ErrConflict)
	}
	if taken, err := s.users.GetByEmail(user.Email); err == nil && taken != nil {
		return fmt.Errorf("email '%s' %w", user.Email, ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.ID = ""
	user.Password = string(hash)

	if err := s.users.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	s.log.WithField("user_id", user.ID.String()).Info("Auth: user registered")
	return nil
}

// LoginUser checks the credentials and returns a fresh token. Unknown users
// and wrong passwords fail the same way.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.IssueToken(user)
}

// IssueToken signs a token for user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:   user.ID.String(),
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature and expiry and returns the claims.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		s.log.Debugf("Auth: token rejected: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token: missing subject")
	}
	return claims, nil
}
