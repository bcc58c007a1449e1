package services

import (
	"crypto/subtle"
	"strings"
	"time"

	"orgsite-backend/config"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single admin account configured through
// the environment and issues the admin session token.
type AuthService struct {
	adminEmail        string
	adminPassword     string
	adminPasswordHash string
	jwtSecret         []byte
	tokenTTL          time.Duration
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		adminEmail:        cfg.AdminEmail,
		adminPassword:     cfg.AdminPassword,
		adminPasswordHash: cfg.AdminPasswordHash,
		jwtSecret:         []byte(cfg.JWTSecret),
		tokenTTL:          time.Duration(cfg.AuthTTLHours) * time.Hour,
	}
}

type AdminClaims struct {
	jwt.RegisteredClaims
}

// Login verifies the admin credentials and returns a signed token plus
// its lifetime. A bcrypt hash is preferred; the plain-text password
// comparison exists for local setups and is constant time.
func (s *AuthService) Login(email, password string) (string, time.Duration, error) {
	if s.adminEmail == "" || !strings.EqualFold(email, s.adminEmail) {
		return "", 0, site_errors.ErrUnauthorized
	}
	if !s.passwordMatches(password) {
		return "", 0, site_errors.ErrUnauthorized
	}

	now := time.Now()
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}
	return signed, s.tokenTTL, nil
}

// ValidateToken parses and verifies an admin session token.
func (s *AuthService) ValidateToken(tokenString string) error {
	if tokenString == "" {
		return site_errors.ErrUnauthorized
	}
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, site_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return site_errors.ErrUnauthorized
	}
	return nil
}

func (s *AuthService) passwordMatches(password string) bool {
	if s.adminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)) == nil
	}
	if s.adminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) == 1
}
