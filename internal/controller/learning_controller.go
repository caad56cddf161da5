package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/service"
	"malama_health_backend/internal/util"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

// swagger:model CreateModuleRequest
type CreateModuleRequest struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description" binding:"required"`
	Category         string           `json:"category" binding:"required"`
	Difficulty       model.Difficulty `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	EstimatedMinutes int              `json:"estimatedMinutes"`
	Lessons          []model.Lesson   `json:"lessons"`
	Quizzes          []model.Quiz     `json:"quizzes"`
}

// swagger:model AddLessonRequest
type AddLessonRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	VideoURL  string   `json:"videoUrl"`
	ImageURLs []string `json:"imageUrls"`
}

// swagger:model AddQuizRequest
type AddQuizRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Questions   []model.QuizQuestion `json:"questions" binding:"required,min=1"`
}

// swagger:model CompleteModuleRequest
type CompleteModuleRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// swagger:model SubmitQuizResultRequest
type SubmitQuizResultRequest struct {
	UserID         string `json:"userId" binding:"required"`
	QuizID         string `json:"quizId" binding:"required"`
	ModuleID       string `json:"moduleId"`
	// A zero score is legitimate, so no required tag here.
	Score          int    `json:"score" binding:"min=0,max=100"`
	CorrectAnswers int    `json:"correctAnswers"`
	TotalQuestions int    `json:"totalQuestions"`
}

// GetModules godoc
// @Summary List learning modules
// @Description Seeds default content on the first read of an empty store.
// @Tags learning
// @Produce json
// @Success 200 {array} model.LearningModule
// @Router /learning/modules [get]
func (c *LearningController) GetModules(ctx *gin.Context) {
	modules, err := c.LearningService.GetModules()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, modules)
}

// GetModule godoc
// @Summary Get a module by id
// @Tags learning
// @Produce json
// @Param id path string true "Module id"
// @Success 200 {object} model.LearningModule
// @Failure 404 {object} util.ErrorResponse
// @Router /learning/modules/{id} [get]
func (c *LearningController) GetModule(ctx *gin.Context) {
	module, err := c.LearningService.GetModule(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// GetModulesByCategory godoc
// @Summary List modules in a category
// @Tags learning
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} model.LearningModule
// @Router /learning/modules/category/{category} [get]
func (c *LearningController) GetModulesByCategory(ctx *gin.Context) {
	modules, err := c.LearningService.GetModulesByCategory(ctx.Param("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, modules)
}

// CreateModule godoc
// @Summary Create a learning module
// @Tags learning
// @Accept json
// @Produce json
// @Param body body CreateModuleRequest true "Module payload"
// @Success 201 {object} model.LearningModule
// @Failure 400 {object} util.ErrorResponse
// @Router /learning/modules [post]
func (c *LearningController) CreateModule(ctx *gin.Context) {
	var req CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields")
		return
	}

	module, err := c.LearningService.CreateModule(model.LearningModule{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Difficulty:       req.Difficulty,
		EstimatedMinutes: req.EstimatedMinutes,
		Lessons:          req.Lessons,
		Quizzes:          req.Quizzes,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, module)
}

// UpdateModule godoc
// @Summary Merge-patch a module
// @Tags learning
// @Accept json
// @Produce json
// @Param id path string true "Module id"
// @Success 200 {object} model.LearningModule
// @Failure 404 {object} util.ErrorResponse
// @Router /learning/modules/{id} [put]
func (c *LearningController) UpdateModule(ctx *gin.Context) {
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	module, err := c.LearningService.UpdateModule(ctx.Param("id"), patch)
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// DeleteModule godoc
// @Summary Delete a module
// @Tags learning
// @Produce json
// @Param id path string true "Module id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} util.ErrorResponse
// @Router /learning/modules/{id} [delete]
func (c *LearningController) DeleteModule(ctx *gin.Context) {
	if err := c.LearningService.DeleteModule(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Module deleted successfully"})
}

// AddLesson godoc
// @Summary Append a lesson to a module
// @Tags learning
// @Accept json
// @Produce json
// @Param id path string true "Module id"
// @Param body body AddLessonRequest true "Lesson payload"
// @Success 201 {object} model.Lesson
// @Failure 404 {object} util.ErrorResponse
// @Router /learning/modules/{id}/lessons [post]
func (c *LearningController) AddLesson(ctx *gin.Context) {
	var req AddLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Title and content are required")
		return
	}

	lesson, err := c.LearningService.AddLesson(ctx.Param("id"), model.Lesson{
		Title:     req.Title,
		Content:   req.Content,
		VideoURL:  req.VideoURL,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, lesson)
}

// AddQuiz godoc
// @Summary Append a quiz to a module
// @Tags learning
// @Accept json
// @Produce json
// @Param id path string true "Module id"
// @Param body body AddQuizRequest true "Quiz payload"
// @Success 201 {object} model.Quiz
// @Failure 404 {object} util.ErrorResponse
// @Router /learning/modules/{id}/quizzes [post]
func (c *LearningController) AddQuiz(ctx *gin.Context) {
	var req AddQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Title, description, and questions are required")
		return
	}

	quiz, err := c.LearningService.AddQuiz(ctx.Param("id"), model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	})
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// CompleteModule godoc
// @Summary Mark a module completed for a user
// @Tags learning
// @Accept json
// @Produce json
// @Param id path string true "Module id"
// @Param body body CompleteModuleRequest true "User id"
// @Success 200 {object} model.LearningModule
// @Failure 404 {object} util.ErrorResponse
// @Router /learning/modules/{id}/complete [post]
func (c *LearningController) CompleteModule(ctx *gin.Context) {
	var req CompleteModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "User ID is required")
		return
	}

	module, err := c.LearningService.CompleteModule(ctx.Param("id"), req.UserID)
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// SubmitQuizResult godoc
// @Summary Record a quiz attempt
// @Description A passing score (70 or above) tied to a module also marks
// @Description the module completed and updates the user's progress.
// @Tags learning
// @Accept json
// @Produce json
// @Param body body SubmitQuizResultRequest true "Result payload"
// @Success 201 {object} model.QuizResult
// @Failure 400 {object} util.ErrorResponse
// @Router /learning/quiz-results [post]
func (c *LearningController) SubmitQuizResult(ctx *gin.Context) {
	var req SubmitQuizResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "User ID, quiz ID, and score are required")
		return
	}

	result, err := c.LearningService.SubmitQuizResult(model.QuizResult{
		UserID:         req.UserID,
		QuizID:         req.QuizID,
		ModuleID:       req.ModuleID,
		Score:          req.Score,
		CorrectAnswers: req.CorrectAnswers,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetQuizResultsByUser godoc
// @Summary List quiz results for a user
// @Tags learning
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} model.QuizResult
// @Router /learning/quiz-results/user/{userId} [get]
func (c *LearningController) GetQuizResultsByUser(ctx *gin.Context) {
	results, err := c.LearningService.QuizResultsByUser(ctx.Param("userId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetQuizResultsByModule godoc
// @Summary List quiz results for a module
// @Tags learning
// @Produce json
// @Param moduleId path string true "Module id"
// @Success 200 {array} model.QuizResult
// @Router /learning/quiz-results/module/{moduleId} [get]
func (c *LearningController) GetQuizResultsByModule(ctx *gin.Context) {
	results, err := c.LearningService.QuizResultsByModule(ctx.Param("moduleId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
