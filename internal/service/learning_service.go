package service

import (
	"go.uber.org/zap"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/repository"
	"malama_health_backend/pkg/logger"
)

// PassingScore is the quiz score at or above which a module counts as
// completed for the submitting user.
const PassingScore = 70

type LearningService struct {
	ModuleRepo *repository.LearningRepository
	UserRepo   *repository.UserRepository
}

func NewLearningService(moduleRepo *repository.LearningRepository, userRepo *repository.UserRepository) *LearningService {
	return &LearningService{ModuleRepo: moduleRepo, UserRepo: userRepo}
}

func (s *LearningService) GetModules() ([]model.LearningModule, error) {
	return s.ModuleRepo.GetAll()
}

func (s *LearningService) GetModule(id string) (*model.LearningModule, error) {
	return s.ModuleRepo.GetByID(id)
}

func (s *LearningService) GetModulesByCategory(category string) ([]model.LearningModule, error) {
	return s.ModuleRepo.GetByCategory(category)
}

func (s *LearningService) CreateModule(module model.LearningModule) (*model.LearningModule, error) {
	return s.ModuleRepo.Create(module)
}

func (s *LearningService) UpdateModule(id string, patch map[string]interface{}) (*model.LearningModule, error) {
	return s.ModuleRepo.Update(id, patch)
}

func (s *LearningService) DeleteModule(id string) error {
	return s.ModuleRepo.Delete(id)
}

func (s *LearningService) AddLesson(moduleID string, lesson model.Lesson) (*model.Lesson, error) {
	return s.ModuleRepo.AddLesson(moduleID, lesson)
}

func (s *LearningService) AddQuiz(moduleID string, quiz model.Quiz) (*model.Quiz, error) {
	return s.ModuleRepo.AddQuiz(moduleID, quiz)
}

// CompleteModule marks the module completed and mirrors the id into the
// user's progress record. The two writes hit different collections with no
// transaction between them; the progress write is best-effort.
func (s *LearningService) CompleteModule(moduleID, userID string) (*model.LearningModule, error) {
	module, err := s.ModuleRepo.MarkAsCompleted(moduleID, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.UpdateProgress(userID, model.UserProgress{
		CompletedModules: []string{moduleID},
	}); err != nil {
		logger.Log.Warn("module marked completed but user progress not updated",
			zap.String("moduleId", moduleID),
			zap.String("userId", userID),
			zap.Error(err),
		)
	}

	return module, nil
}

// SubmitQuizResult persists the attempt and, for a passing score tied to a
// module, marks that module completed and folds both ids into the user's
// progress.
func (s *LearningService) SubmitQuizResult(result model.QuizResult) (*model.QuizResult, error) {
	saved, err := s.ModuleRepo.SaveQuizResult(result)
	if err != nil {
		return nil, err
	}

	if saved.Score >= PassingScore && saved.ModuleID != "" {
		if _, err := s.ModuleRepo.MarkAsCompleted(saved.ModuleID, saved.UserID); err != nil {
			logger.Log.Warn("quiz passed but module completion not recorded",
				zap.String("moduleId", saved.ModuleID),
				zap.String("userId", saved.UserID),
				zap.Error(err),
			)
		}
		if _, err := s.UserRepo.UpdateProgress(saved.UserID, model.UserProgress{
			CompletedModules: []string{saved.ModuleID},
			QuizResults:      []string{saved.ID},
		}); err != nil {
			logger.Log.Warn("quiz passed but user progress not updated",
				zap.String("userId", saved.UserID),
				zap.Error(err),
			)
		}
	}

	return saved, nil
}

func (s *LearningService) QuizResultsByUser(userID string) ([]model.QuizResult, error) {
	return s.ModuleRepo.GetQuizResultsByUser(userID)
}

func (s *LearningService) QuizResultsByModule(moduleID string) ([]model.QuizResult, error) {
	return s.ModuleRepo.GetQuizResultsByModule(moduleID)
}
