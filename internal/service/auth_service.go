package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"malama_health_backend/internal/config"
	"malama_health_backend/internal/model"
	"malama_health_backend/internal/repository"
	"malama_health_backend/internal/util"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Cfg: cfg}
}

// Register creates the account with a bcrypt-hashed password and issues a
// short-lived token bound to the new id.
func (s *AuthService) Register(username, email, password, name, language string) (*model.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	if language == "" {
		language = "en"
	}

	user, err := s.UserRepo.Create(model.User{
		Username: username,
		Email:    email,
		Name:     name,
		Password: string(hashed),
		Language: language,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user.ID, user.Username, s.Cfg.JWT.Secret, s.Cfg.JWT.RegisterExpire)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates strictly: an unknown email or a wrong password both
// fail with the same invalid-credentials error. There is no demo-style
// auto-registration path.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Username, s.Cfg.JWT.Secret, s.Cfg.JWT.LoginExpire)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
