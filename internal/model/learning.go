package model

import "time"

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// LearningModule bundles an ordered set of lessons and quizzes under one
// health topic. CompletedBy holds user ids, each at most once.
// swagger:model LearningModule
type LearningModule struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Lessons          []Lesson   `json:"lessons"`
	Quizzes          []Quiz     `json:"quizzes"`
	CompletedBy      []string   `json:"completedBy"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt,omitzero"`
}

type Lesson struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // markdown
	VideoURL  string    `json:"videoUrl,omitempty"`
	ImageURLs []string  `json:"imageUrls,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type Quiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions"`
	CreatedAt   time.Time      `json:"createdAt,omitzero"`
}

type QuizQuestion struct {
	ID              string       `json:"id"`
	QuestionText    string       `json:"questionText"`
	Options         []QuizOption `json:"options"`
	CorrectOptionID string       `json:"correctOptionId"`
	Explanation     string       `json:"explanation"`
}

type QuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
