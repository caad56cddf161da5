package model

import "time"

// QuizResult records one quiz attempt. Results live in their own flat
// collection rather than inside the module that owns the quiz.
// swagger:model QuizResult
type QuizResult struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	QuizID         string    `json:"quizId"`
	ModuleID       string    `json:"moduleId,omitempty"`
	Score          int       `json:"score"` // 0-100
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
}
