package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthLoginAndParse(t *testing.T) {
	svc, err := NewAuthService("", "secret-pass", "jwt-secret")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := svc.Login("wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong password: got %v", err)
	}
	token, err := svc.Login("secret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !IsAdminClaims(claims) {
		t.Errorf("claims lack admin role: %v", claims)
	}

	other, _ := NewAuthService("", "secret-pass", "another-secret")
	if _, err := other.ParseToken(token); err == nil {
		t.Error("token accepted under a different secret")
	}
}

func TestAuthPreHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	svc, err := NewAuthService(string(hash), "", "jwt-secret")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := svc.Login("hunter2"); err != nil {
		t.Errorf("login: %v", err)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	svc, _ := NewAuthService("", "pw", "jwt-secret")
	impl := svc.(*authService)
	impl.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := svc.Login("pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.ParseToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestAuthRejectsNoneAlgorithm(t *testing.T) {
	svc, _ := NewAuthService("", "pw", "jwt-secret")
	forged := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{jwtClaimRole: RoleAdmin})
	s, err := forged.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ParseToken(s); err == nil {
		t.Error("unsigned token accepted")
	}
}

func TestNewAuthServiceRequiresSecrets(t *testing.T) {
	if _, err := NewAuthService("", "", "jwt-secret"); err == nil {
		t.Error("missing password accepted")
	}
	if _, err := NewAuthService("", "pw", ""); err == nil {
		t.Error("missing jwt secret accepted")
	}
}
