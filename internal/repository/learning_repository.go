package repository

import (
	_ "embed"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/util"
	"malama_health_backend/pkg/logger"
	"malama_health_backend/pkg/store"
)

//go:embed default_learning_modules.json
var defaultModulesJSON []byte

type LearningRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewLearningRepository(s store.Store) *LearningRepository {
	return &LearningRepository{store: s}
}

func (r *LearningRepository) loadModules() ([]model.LearningModule, error) {
	var modules []model.LearningModule
	if err := r.store.ReadAll(store.LearningModules, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// GetAll returns every module, seeding the collection on first read of an
// empty store: the bundled default-module document is preferred, a single
// placeholder module is the fallback. The seed is persisted before
// returning, so a second call sees the same data and writes nothing.
func (r *LearningRepository) GetAll() ([]model.LearningModule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}
	if len(modules) > 0 {
		return modules, nil
	}

	modules = r.seedModules()
	if err := r.store.WriteAll(store.LearningModules, modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *LearningRepository) seedModules() []model.LearningModule {
	var defaults []model.LearningModule
	if err := json.Unmarshal(defaultModulesJSON, &defaults); err != nil {
		logger.Log.Error("failed to parse bundled default modules", zap.Error(err))
	}
	if len(defaults) > 0 {
		return defaults
	}

	return []model.LearningModule{
		{
			ID:               r.store.GenerateID(),
			Title:            "Introduction to Health Literacy",
			Description:      "An overview of health literacy concepts and why they matter.",
			Category:         "general",
			Difficulty:       model.Beginner,
			EstimatedMinutes: 15,
			Lessons: []model.Lesson{
				{
					ID:      r.store.GenerateID(),
					Title:   "What is Health Literacy?",
					Content: "Health literacy is the degree to which individuals have the capacity to obtain, process, and understand basic health information and services needed to make appropriate health decisions.",
				},
			},
			Quizzes:     []model.Quiz{},
			CompletedBy: []string{},
			CreatedAt:   time.Now().UTC(),
		},
	}
}

func (r *LearningRepository) GetByID(id string) (*model.LearningModule, error) {
	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], nil
		}
	}
	return nil, util.ErrModuleNotFound
}

func (r *LearningRepository) GetByCategory(category string) ([]model.LearningModule, error) {
	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}
	matched := make([]model.LearningModule, 0)
	for _, m := range modules {
		if m.Category == category {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r *LearningRepository) Create(module model.LearningModule) (*model.LearningModule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}

	module.ID = r.store.GenerateID()
	module.CreatedAt = time.Now().UTC()
	if module.Lessons == nil {
		module.Lessons = []model.Lesson{}
	}
	if module.Quizzes == nil {
		module.Quizzes = []model.Quiz{}
	}
	module.CompletedBy = []string{}

	modules = append(modules, module)
	if err := r.store.WriteAll(store.LearningModules, modules); err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *LearningRepository) Update(id string, patch map[string]interface{}) (*model.LearningModule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}

	idx := r.indexOf(modules, id)
	if idx == -1 {
		return nil, util.ErrModuleNotFound
	}

	delete(patch, "id")
	delete(patch, "createdAt")

	if err := util.MergePatch(&modules[idx], patch); err != nil {
		return nil, err
	}
	modules[idx].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteAll(store.LearningModules, modules); err != nil {
		return nil, err
	}
	return &modules[idx], nil
}

func (r *LearningRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules, err := r.loadModules()
	if err != nil {
		return err
	}

	kept := modules[:0]
	for _, m := range modules {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(modules) {
		return util.ErrModuleNotFound
	}

	return r.store.WriteAll(store.LearningModules, kept)
}

func (r *LearningRepository) AddLesson(moduleID string, lesson model.Lesson) (*model.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}

	idx := r.indexOf(modules, moduleID)
	if idx == -1 {
		return nil, util.ErrModuleNotFound
	}

	lesson.ID = r.store.GenerateID()
	lesson.CreatedAt = time.Now().UTC()

	modules[idx].Lessons = append(modules[idx].Lessons, lesson)
	modules[idx].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteAll(store.LearningModules, modules); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LearningRepository) AddQuiz(moduleID string, quiz model.Quiz) (*model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}

	idx := r.indexOf(modules, moduleID)
	if idx == -1 {
		return nil, util.ErrModuleNotFound
	}

	quiz.ID = r.store.GenerateID()
	quiz.CreatedAt = time.Now().UTC()

	modules[idx].Quizzes = append(modules[idx].Quizzes, quiz)
	modules[idx].UpdatedAt = time.Now().UTC()

	if err := r.store.WriteAll(store.LearningModules, modules); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// MarkAsCompleted records the user in the module's completedBy list, at
// most once. A repeat call returns the module unchanged without writing.
func (r *LearningRepository) MarkAsCompleted(moduleID, userID string) (*model.LearningModule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules, err := r.loadModules()
	if err != nil {
		return nil, err
	}

	idx := r.indexOf(modules, moduleID)
	if idx == -1 {
		return nil, util.ErrModuleNotFound
	}

	before := len(modules[idx].CompletedBy)
	modules[idx].CompletedBy = appendUnique(modules[idx].CompletedBy, userID)
	if len(modules[idx].CompletedBy) != before {
		if err := r.store.WriteAll(store.LearningModules, modules); err != nil {
			return nil, err
		}
	}
	return &modules[idx], nil
}

// Quiz results live in their own flat collection, not inside the module.

func (r *LearningRepository) SaveQuizResult(result model.QuizResult) (*model.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var results []model.QuizResult
	if err := r.store.ReadAll(store.QuizResults, &results); err != nil {
		return nil, err
	}

	result.ID = r.store.GenerateID()
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now().UTC()
	}

	results = append(results, result)
	if err := r.store.WriteAll(store.QuizResults, results); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *LearningRepository) GetQuizResultsByUser(userID string) ([]model.QuizResult, error) {
	return r.filterResults(func(res model.QuizResult) bool { return res.UserID == userID })
}

func (r *LearningRepository) GetQuizResultsByModule(moduleID string) ([]model.QuizResult, error) {
	return r.filterResults(func(res model.QuizResult) bool { return res.ModuleID == moduleID })
}

func (r *LearningRepository) filterResults(keep func(model.QuizResult) bool) ([]model.QuizResult, error) {
	var results []model.QuizResult
	if err := r.store.ReadAll(store.QuizResults, &results); err != nil {
		return nil, err
	}
	matched := make([]model.QuizResult, 0)
	for _, res := range results {
		if keep(res) {
			matched = append(matched, res)
		}
	}
	return matched, nil
}

func (r *LearningRepository) indexOf(modules []model.LearningModule, id string) int {
	for i := range modules {
		if modules[i].ID == id {
			return i
		}
	}
	return -1
}
