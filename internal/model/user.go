package model

import (
	"time"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// swagger:model User
type User struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Password      string          `json:"password,omitempty"`
	Language      string          `json:"language"`
	Preferences   UserPreferences `json:"preferences"`
	Progress      *UserProgress   `json:"progress,omitempty"`
	HealthMetrics *HealthMetrics  `json:"healthMetrics,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt,omitzero"`
}

// Sanitized returns a copy safe to put on the wire. The password hash is
// persisted to disk but never leaves the server.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

type UserPreferences struct {
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	DarkMode             bool     `json:"darkMode"`
	FontSize             FontSize `json:"fontSize"`
	Language             string   `json:"language"`
}

// DefaultPreferences is the block stamped onto every new account.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		NotificationsEnabled: true,
		DarkMode:             false,
		FontSize:             FontMedium,
		Language:             "en",
	}
}

// UserProgress tracks what a user has done across the other collections.
// Each list holds ids and stays duplicate-free.
type UserProgress struct {
	CompletedModules []string `json:"completedModules"`
	QuizResults      []string `json:"quizResults"`
	ForumPosts       []string `json:"forumPosts"`
	ForumComments    []string `json:"forumComments"`
}

type HealthMetrics struct {
	Height        float64                `json:"height,omitempty"` // cm
	Weight        float64                `json:"weight,omitempty"` // kg
	BloodPressure []BloodPressureReading `json:"bloodPressure,omitempty"`
	BloodSugar    []BloodSugarReading    `json:"bloodSugar,omitempty"`
}

type BloodPressureReading struct {
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Date      time.Time `json:"date"`
}

type BloodSugarReading struct {
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}
