package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"malama_health_backend/internal/config"
	"malama_health_backend/internal/repository"
	"malama_health_backend/internal/util"
	"malama_health_backend/pkg/store"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.RegisterExpire = 24 * time.Hour
	cfg.JWT.LoginExpire = 168 * time.Hour
	return cfg
}

func newAuthService() *AuthService {
	userRepo := repository.NewUserRepository(store.NewMemoryStore())
	return NewAuthService(userRepo, testConfig())
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	s := newAuthService()

	user, token, err := s.Register("kai", "kai@example.com", "aloha123", "Kai", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("no token issued")
	}
	if user.Password == "aloha123" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("aloha123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Language != "en" {
		t.Fatalf("language = %q, want en default", user.Language)
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "kai" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := newAuthService()

	if _, _, err := s.Register("kai", "kai@example.com", "aloha123", "Kai", ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, _, err := s.Register("kai2", "kai@example.com", "aloha123", "Kai", ""); !errors.Is(err, util.ErrDuplicateUser) {
		t.Fatalf("got %v, want ErrDuplicateUser", err)
	}
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	s := newAuthService()

	registered, _, err := s.Register("kai", "kai@example.com", "aloha123", "Kai", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := s.Login("kai@example.com", "aloha123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("logged in as %s, want %s", user.ID, registered.ID)
	}
	if token == "" {
		t.Fatal("no token issued")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newAuthService()

	if _, _, err := s.Register("kai", "kai@example.com", "aloha123", "Kai", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := s.Login("kai@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmailDoesNotAutoRegister(t *testing.T) {
	s := newAuthService()

	if _, _, err := s.Login("nobody@example.com", "whatever"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}

	users, err := s.UserRepo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("login created %d users, want none", len(users))
	}
}
