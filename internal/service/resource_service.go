package service

import (
	"malama_health_backend/internal/model"
	"malama_health_backend/internal/repository"
)

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
}

func NewResourceService(resourceRepo *repository.ResourceRepository) *ResourceService {
	return &ResourceService{ResourceRepo: resourceRepo}
}

func (s *ResourceService) GetAll() ([]model.Resource, error) {
	return s.ResourceRepo.GetAll()
}

func (s *ResourceService) GetByID(id string) (*model.Resource, error) {
	return s.ResourceRepo.GetByID(id)
}

func (s *ResourceService) GetByCategory(category string) ([]model.Resource, error) {
	return s.ResourceRepo.GetByCategory(category)
}

func (s *ResourceService) Create(resource model.Resource) (*model.Resource, error) {
	return s.ResourceRepo.Create(resource)
}

func (s *ResourceService) Update(id string, patch map[string]interface{}) (*model.Resource, error) {
	return s.ResourceRepo.Update(id, patch)
}

func (s *ResourceService) Delete(id string) error {
	return s.ResourceRepo.Delete(id)
}
