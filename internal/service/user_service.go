package service

import (
	"encoding/json"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/repository"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetAll() ([]model.User, error) {
	return s.UserRepo.GetAll()
}

func (s *UserService) GetByID(id string) (*model.User, error) {
	return s.UserRepo.GetByID(id)
}

func (s *UserService) Update(id string, patch map[string]interface{}) (*model.User, error) {
	return s.UserRepo.Update(id, patch)
}

func (s *UserService) Delete(id string) error {
	return s.UserRepo.Delete(id)
}

// UpdatePreferences merges the supplied fields into the user's existing
// preference block, so a payload may carry a single toggle without wiping
// the rest.
func (s *UserService) UpdatePreferences(id string, prefs map[string]interface{}) (*model.User, error) {
	user, err := s.UserRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	current, err := json.Marshal(user.Preferences)
	if err != nil {
		return nil, err
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(current, &merged); err != nil {
		return nil, err
	}
	for k, v := range prefs {
		merged[k] = v
	}

	return s.UserRepo.Update(id, map[string]interface{}{"preferences": merged})
}

func (s *UserService) RecordProgress(userID string, progress model.UserProgress) (*model.User, error) {
	return s.UserRepo.UpdateProgress(userID, progress)
}
