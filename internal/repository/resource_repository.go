package repository

import (
	"sync"
	"time"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/util"
	"malama_health_backend/pkg/store"
)

type ResourceRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewResourceRepository(s store.Store) *ResourceRepository {
	return &ResourceRepository{store: s}
}

func (r *ResourceRepository) load() ([]model.Resource, error) {
	var resources []model.Resource
	if err := r.store.ReadAll(store.Resources, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// GetAll seeds two placeholder resources on first read of an empty
// collection, mirroring the learning modules' seeding pattern.
func (r *ResourceRepository) GetAll() ([]model.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resources, err := r.load()
	if err != nil {
		return nil, err
	}
	if len(resources) > 0 {
		return resources, nil
	}

	now := time.Now().UTC()
	resources = []model.Resource{
		{
			ID:          r.store.GenerateID(),
			Title:       "Waianae Coast Comprehensive Health Center",
			Description: "Provides comprehensive medical, dental, and mental health services to the communities along Oahu's Waianae Coast.",
			Category:    "general",
			URL:         "http://www.wcchc.com",
			Phone:       "(808) 697-3300",
			Address:     "87-2070 Farrington Hwy, Wai'anae, HI 96792",
			Tags:        []string{"medical", "dental", "mental health"},
			CreatedAt:   now,
		},
		{
			ID:          r.store.GenerateID(),
			Title:       "Hawaii State Department of Health",
			Description: "Provides comprehensive public health services, including disease prevention and health promotion.",
			Category:    "general",
			URL:         "http://hawaii.gov/health",
			Phone:       "(808) 586-4400",
			Address:     "1250 Punchbowl St, Honolulu, HI 96813",
			Tags:        []string{"public health", "government", "disease prevention"},
			CreatedAt:   now,
		},
	}

	if err := r.store.WriteAll(store.Resources, resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *ResourceRepository) GetByID(id string) (*model.Resource, error) {
	resources, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range resources {
		if resources[i].ID == id {
			return &resources[i], nil
		}
	}
	return nil, util.ErrResourceNotFound
}

func (r *ResourceRepository) GetByCategory(category string) ([]model.Resource, error) {
	resources, err := r.load()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Resource, 0)
	for _, res := range resources {
		if res.Category == category {
			matched = append(matched, res)
		}
	}
	return matched, nil
}

func (r *ResourceRepository) Create(resource model.Resource) (*model.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resources, err := r.load()
	if err != nil {
		return nil, err
	}

	resource.ID = r.store.GenerateID()
	resource.CreatedAt = time.Now().UTC()
	if resource.Tags == nil {
		resource.Tags = []string{}
	}

	resources = append(resources, resource)
	if err := r.store.WriteAll(store.Resources, resources); err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *ResourceRepository) Update(id string, patch map[string]interface{}) (*model.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resources, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range resources {
		if resources[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, util.ErrResourceNotFound
	}

	delete(patch, "id")
	delete(patch, "createdAt")

	if err := util.MergePatch(&resources[idx], patch); err != nil {
		return nil, err
	}
	resources[idx].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteAll(store.Resources, resources); err != nil {
		return nil, err
	}
	return &resources[idx], nil
}

func (r *ResourceRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	resources, err := r.load()
	if err != nil {
		return err
	}

	kept := resources[:0]
	for _, res := range resources {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	if len(kept) == len(resources) {
		return util.ErrResourceNotFound
	}

	return r.store.WriteAll(store.Resources, kept)
}
