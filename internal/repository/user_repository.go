package repository

import (
	"sync"
	"time"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/util"
	"malama_health_backend/pkg/store"
)

type UserRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) load() ([]model.User, error) {
	var users []model.User
	if err := r.store.ReadAll(store.Users, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetAll() ([]model.User, error) {
	return r.load()
}

func (r *UserRepository) GetByID(id string) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, util.ErrUserNotFound
}

// GetByCredentials matches the identifier against username OR email.
func (r *UserRepository) GetByCredentials(identifier string) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == identifier || users[i].Email == identifier {
			return &users[i], nil
		}
	}
	return nil, util.ErrUserNotFound
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, util.ErrUserNotFound
}

// Create rejects duplicates by email or username, assigns an id, stamps the
// creation time and the default preference block, and persists. The caller
// is responsible for hashing the password beforehand.
func (r *UserRepository) Create(user model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == user.Email || users[i].Username == user.Username {
			return nil, util.ErrDuplicateUser
		}
	}

	user.ID = r.store.GenerateID()
	user.CreatedAt = time.Now().UTC()
	user.Preferences = model.DefaultPreferences()
	if user.Language != "" {
		user.Preferences.Language = user.Language
	}

	users = append(users, user)
	if err := r.store.WriteAll(store.Users, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update merge-patches the stored record. The password can never be changed
// through this path, and id/createdAt are fixed at creation.
func (r *UserRepository) Update(id string, patch map[string]interface{}) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, util.ErrUserNotFound
	}

	delete(patch, "password")
	delete(patch, "id")
	delete(patch, "createdAt")

	if err := util.MergePatch(&users[idx], patch); err != nil {
		return nil, err
	}
	users[idx].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteAll(store.Users, users); err != nil {
		return nil, err
	}
	return &users[idx], nil
}

func (r *UserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return util.ErrUserNotFound
	}

	return r.store.WriteAll(store.Users, kept)
}

// UpdateProgress unions the supplied ids into the user's progress lists.
// Calling it twice with the same ids is a no-op the second time.
func (r *UserRepository) UpdateProgress(userID string, progress model.UserProgress) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, util.ErrUserNotFound
	}

	if users[idx].Progress == nil {
		users[idx].Progress = &model.UserProgress{
			CompletedModules: []string{},
			QuizResults:      []string{},
			ForumPosts:       []string{},
			ForumComments:    []string{},
		}
	}

	p := users[idx].Progress
	p.CompletedModules = appendUnique(p.CompletedModules, progress.CompletedModules...)
	p.QuizResults = appendUnique(p.QuizResults, progress.QuizResults...)
	p.ForumPosts = appendUnique(p.ForumPosts, progress.ForumPosts...)
	p.ForumComments = appendUnique(p.ForumComments, progress.ForumComments...)

	users[idx].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteAll(store.Users, users); err != nil {
		return nil, err
	}
	return &users[idx], nil
}
