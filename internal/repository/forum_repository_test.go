package repository

import (
	"errors"
	"testing"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/util"
	"malama_health_backend/pkg/store"
)

func newForumRepo() *ForumRepository {
	return NewForumRepository(store.NewMemoryStore())
}

func mustCreatePost(t *testing.T, r *ForumRepository) *model.ForumPost {
	t.Helper()
	p, err := r.Create(model.ForumPost{
		Title:      "Managing blood sugar",
		Content:    "What works for everyone?",
		Category:   "diabetes",
		AuthorID:   "u1",
		AuthorName: "Kai",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return p
}

func TestForumCreateInitializesCounters(t *testing.T) {
	r := newForumRepo()
	p := mustCreatePost(t, r)

	if p.ID == "" {
		t.Fatal("no id assigned")
	}
	if p.Likes != 0 || p.Views != 0 {
		t.Fatalf("counters = likes %d views %d, want 0 0", p.Likes, p.Views)
	}
	if p.Comments == nil || len(p.Comments) != 0 {
		t.Fatalf("comments = %v, want empty list", p.Comments)
	}
	if p.Tags == nil {
		t.Fatal("tags should default to empty list")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatal("timestamps not stamped")
	}
}

func TestForumGetByCategory(t *testing.T) {
	r := newForumRepo()
	mustCreatePost(t, r)
	if _, err := r.Create(model.ForumPost{Title: "Hiking", Category: "fitness", AuthorID: "u2", AuthorName: "Leilani"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	matched, err := r.GetByCategory("diabetes")
	if err != nil {
		t.Fatalf("GetByCategory: %v", err)
	}
	if len(matched) != 1 || matched[0].Category != "diabetes" {
		t.Fatalf("matched = %+v", matched)
	}

	none, err := r.GetByCategory("nutrition")
	if err != nil {
		t.Fatalf("GetByCategory: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("empty category should be empty list, got %v", none)
	}
}

func TestForumAddComment(t *testing.T) {
	r := newForumRepo()
	p := mustCreatePost(t, r)

	c, err := r.AddComment(p.ID, model.ForumComment{
		Content:    "Walking after meals helps me.",
		AuthorID:   "u2",
		AuthorName: "Leilani",
	})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if c.ID == "" || c.CreatedAt.IsZero() {
		t.Fatalf("comment not stamped: %+v", c)
	}

	stored, err := r.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(stored.Comments) != 1 || stored.Comments[0].ID != c.ID {
		t.Fatalf("comment not embedded in post: %+v", stored.Comments)
	}

	if _, err := r.AddComment("missing", model.ForumComment{}); !errors.Is(err, util.ErrPostNotFound) {
		t.Fatalf("got %v, want ErrPostNotFound", err)
	}
}

func TestForumLikePostHasNoDedup(t *testing.T) {
	r := newForumRepo()
	p := mustCreatePost(t, r)

	if _, err := r.LikePost(p.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	liked, err := r.LikePost(p.ID)
	if err != nil {
		t.Fatalf("second like: %v", err)
	}
	if liked.Likes != 2 {
		t.Fatalf("likes = %d, want 2", liked.Likes)
	}

	if _, err := r.LikePost("missing"); !errors.Is(err, util.ErrPostNotFound) {
		t.Fatalf("got %v, want ErrPostNotFound", err)
	}
}

func TestForumIncrementViews(t *testing.T) {
	r := newForumRepo()
	p := mustCreatePost(t, r)

	for i := 0; i < 3; i++ {
		if _, err := r.IncrementViews(p.ID); err != nil {
			t.Fatalf("IncrementViews: %v", err)
		}
	}

	stored, err := r.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Views != 3 {
		t.Fatalf("views = %d, want 3", stored.Views)
	}
}

func TestForumUpdateAndDelete(t *testing.T) {
	r := newForumRepo()
	p := mustCreatePost(t, r)

	updated, err := r.Update(p.ID, map[string]interface{}{"title": "Managing blood sugar (updated)"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Managing blood sugar (updated)" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.AuthorName != "Kai" {
		t.Fatalf("untouched field changed: %q", updated.AuthorName)
	}

	if err := r.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := r.GetByID(p.ID); !errors.Is(err, util.ErrPostNotFound) {
		t.Fatalf("deleted post still found: %v", err)
	}
	if err := r.Delete(p.ID); !errors.Is(err, util.ErrPostNotFound) {
		t.Fatalf("second delete: got %v, want ErrPostNotFound", err)
	}
}
