// Package store provides the flat-file persistence layer: one JSON array
// per entity collection, rewritten in full on every mutation.
package store

import "github.com/google/uuid"

// Collection names. Each maps to <name>.json inside the data directory.
const (
	Users           = "users"
	ForumPosts      = "forumPosts"
	Resources       = "resources"
	LearningModules = "learningModules"
	QuizResults     = "quizResults"
)

// Collections lists every known collection, in initialization order.
var Collections = []string{Users, ForumPosts, Resources, LearningModules, QuizResults}

// Store reads and writes whole collections. Implementations must treat a
// collection that was never written as empty rather than missing.
type Store interface {
	// ReadAll unmarshals the named collection into out, which must be a
	// pointer to a slice. A collection with no data leaves out untouched.
	ReadAll(name string, out interface{}) error
	// WriteAll replaces the named collection with records.
	WriteAll(name string, records interface{}) error
	// GenerateID returns a new opaque unique identifier.
	GenerateID() string
}

// NewID returns a fresh UUIDv4 string. Both store implementations use it;
// collisions are assumed negligible and no registry is kept.
func NewID() string {
	return uuid.New().String()
}
