package service

import (
	"testing"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/repository"
	"malama_health_backend/pkg/store"
)

func newForumFixture(t *testing.T) (*ForumService, *repository.UserRepository, *model.User) {
	t.Helper()
	s := store.NewMemoryStore()
	userRepo := repository.NewUserRepository(s)
	svc := NewForumService(repository.NewForumRepository(s), userRepo)

	user, err := userRepo.Create(model.User{Username: "kai", Email: "kai@example.com", Password: "hashed", Name: "Kai"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return svc, userRepo, user
}

func TestCreatePostRecordsAuthorProgress(t *testing.T) {
	svc, userRepo, user := newForumFixture(t)

	created, err := svc.CreatePost(model.ForumPost{
		Title:      "New here",
		Content:    "Aloha everyone",
		Category:   "general",
		AuthorID:   user.ID,
		AuthorName: user.Name,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	updated, err := userRepo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Progress == nil {
		t.Fatal("author progress not created")
	}
	if got := updated.Progress.ForumPosts; len(got) != 1 || got[0] != created.ID {
		t.Fatalf("forumPosts = %v, want [%s]", got, created.ID)
	}
}

func TestCreatePostSurvivesUnknownAuthor(t *testing.T) {
	svc, _, _ := newForumFixture(t)

	// The progress write is best-effort: a post by an id the users
	// collection has never seen still lands.
	created, err := svc.CreatePost(model.ForumPost{
		Title:      "Drive-by post",
		Category:   "general",
		AuthorID:   "ghost",
		AuthorName: "Ghost",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if created.ID == "" {
		t.Fatal("post not created")
	}
}

func TestAddCommentRecordsAuthorProgress(t *testing.T) {
	svc, userRepo, user := newForumFixture(t)

	post, err := svc.CreatePost(model.ForumPost{Title: "T", Category: "general", AuthorID: user.ID, AuthorName: user.Name})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	comment, err := svc.AddComment(post.ID, model.ForumComment{
		Content:    "Welcome!",
		AuthorID:   user.ID,
		AuthorName: user.Name,
	})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	updated, err := userRepo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got := updated.Progress.ForumComments; len(got) != 1 || got[0] != comment.ID {
		t.Fatalf("forumComments = %v, want [%s]", got, comment.ID)
	}
}

func TestViewPostCountsTheView(t *testing.T) {
	svc, _, user := newForumFixture(t)

	post, err := svc.CreatePost(model.ForumPost{Title: "T", Category: "general", AuthorID: user.ID, AuthorName: user.Name})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	viewed, err := svc.ViewPost(post.ID)
	if err != nil {
		t.Fatalf("ViewPost: %v", err)
	}
	if viewed.Views != 1 {
		t.Fatalf("views = %d, want 1", viewed.Views)
	}
}
