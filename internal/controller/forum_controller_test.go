package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"malama_health_backend/internal/model"
)

func createPost(t *testing.T, router *gin.Engine) model.ForumPost {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/forum", map[string]interface{}{
		"title":      "Managing blood sugar",
		"content":    "What works for everyone?",
		"category":   "diabetes",
		"authorId":   "u1",
		"authorName": "Kai",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create post status = %d, body %s", w.Code, w.Body.String())
	}

	var post model.ForumPost
	decodeBody(t, w, &post)
	return post
}

func TestCreatePostEndpoint(t *testing.T) {
	router := newTestRouter(t)
	post := createPost(t, router)

	if post.ID == "" || post.Title != "Managing blood sugar" {
		t.Fatalf("post = %+v", post)
	}
	if post.Likes != 0 || post.Views != 0 || len(post.Comments) != 0 {
		t.Fatalf("fresh post not zeroed: %+v", post)
	}
}

func TestCreatePostMissingAuthor(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/forum", map[string]interface{}{
		"title":    "No author",
		"content":  "x",
		"category": "general",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetPostCountsView(t *testing.T) {
	router := newTestRouter(t)
	post := createPost(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/forum/"+post.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got model.ForumPost
	decodeBody(t, w, &got)
	if got.Views != 1 {
		t.Fatalf("views = %d, want 1 after first read", got.Views)
	}
}

func TestLikePostTwice(t *testing.T) {
	router := newTestRouter(t)
	post := createPost(t, router)

	if w := doJSON(t, router, http.MethodPost, "/api/forum/"+post.ID+"/like", nil); w.Code != http.StatusOK {
		t.Fatalf("first like status = %d", w.Code)
	}
	w := doJSON(t, router, http.MethodPost, "/api/forum/"+post.ID+"/like", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second like status = %d", w.Code)
	}

	var got model.ForumPost
	decodeBody(t, w, &got)
	if got.Likes != 2 {
		t.Fatalf("likes = %d, want 2", got.Likes)
	}
}

func TestAddCommentEndpoint(t *testing.T) {
	router := newTestRouter(t)
	post := createPost(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/forum/"+post.ID+"/comments", map[string]interface{}{
		"content":    "Walking after meals helps me.",
		"authorId":   "u2",
		"authorName": "Leilani",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var comment model.ForumComment
	decodeBody(t, w, &comment)
	if comment.ID == "" || comment.AuthorName != "Leilani" {
		t.Fatalf("comment = %+v", comment)
	}
}

func TestForumNotFoundMapping(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/forum/missing/like", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "Post not found" {
		t.Fatalf("error = %q", body["error"])
	}
}
