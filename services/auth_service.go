package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin     = "admin"
	adminTokenTTL = 24 * time.Hour

	jwtClaimRole = "role"
)

type AuthService interface {
	Login(password string) (string, error)
	ParseToken(tokenString string) (jwt.MapClaims, error)
}

type authService struct {
	passwordHash []byte
	jwtSecret    []byte
	now          func() time.Time
}

// NewAuthService builds the admin session service. Exactly one of hash or
// password is used; a plain password is hashed once here.
func NewAuthService(passwordHash, password, jwtSecret string) (AuthService, error) {
	hash := []byte(passwordHash)
	if len(hash) == 0 {
		if password == "" {
			return nil, errors.New("admin password is not configured")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("ошибка хеширования пароля: %w", err)
		}
	}
	if jwtSecret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return &authService{
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}, nil
}

func (s *authService) Login(password string) (string, error) {
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidPassword
		}
		return "", fmt.Errorf("failed to compare password hash: %w", err)
	}

	now := s.now()
	claims := jwt.MapClaims{
		jwtClaimRole: RoleAdmin,
		"exp":        now.Add(adminTokenTTL).Unix(),
		"iat":        now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func (s *authService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// IsAdminClaims reports whether the claims carry the admin role.
func IsAdminClaims(claims jwt.MapClaims) bool {
	role, _ := claims[jwtClaimRole].(string)
	return role == RoleAdmin
}
