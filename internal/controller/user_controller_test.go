package controller

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func registerUser(t *testing.T, router *gin.Engine, username, email string) AuthResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/users/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "aloha123",
		"name":     "Test " + username,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestRegisterEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users/register", map[string]string{
		"username": "kai",
		"email":    "kai@example.com",
		"password": "aloha123",
		"name":     "Kai",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	decodeBody(t, w, &resp)
	if resp.User.Username != "kai" || resp.User.ID == "" {
		t.Fatalf("user = %+v", resp.User)
	}
	if resp.Token == "" {
		t.Fatal("no token in response")
	}
	// The raw body must never carry the hash.
	if strings.Contains(w.Body.String(), `"password"`) {
		t.Fatalf("password leaked: %s", w.Body.String())
	}
}

func TestRegisterMissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/users/register", map[string]string{
		"username": "kai",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] == "" {
		t.Fatalf("error envelope missing: %s", w.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "kai", "kai@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/users/register", map[string]string{
		"username": "other",
		"email":    "kai@example.com",
		"password": "aloha123",
		"name":     "Other",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)
	registered := registerUser(t, router, "kai", "kai@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "kai@example.com",
		"password": "aloha123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	decodeBody(t, w, &resp)
	if resp.User.ID != registered.User.ID || resp.Token == "" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, "kai", "kai@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "kai@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "Invalid email or password" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestGetUserNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/users/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "User not found" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestUpdatePreferencesEndpoint(t *testing.T) {
	router := newTestRouter(t)
	registered := registerUser(t, router, "kai", "kai@example.com")

	w := doJSON(t, router, http.MethodPut, "/api/users/"+registered.User.ID+"/preferences", map[string]interface{}{
		"darkMode": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var user struct {
		Preferences struct {
			DarkMode             bool `json:"darkMode"`
			NotificationsEnabled bool `json:"notificationsEnabled"`
		} `json:"preferences"`
	}
	decodeBody(t, w, &user)
	if !user.Preferences.DarkMode || !user.Preferences.NotificationsEnabled {
		t.Fatalf("preferences = %+v", user.Preferences)
	}
}

func TestDeleteUserEndpoint(t *testing.T) {
	router := newTestRouter(t)
	registered := registerUser(t, router, "kai", "kai@example.com")

	w := doJSON(t, router, http.MethodDelete, "/api/users/"+registered.User.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/users/"+registered.User.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted user still served: %d", w.Code)
	}
}
