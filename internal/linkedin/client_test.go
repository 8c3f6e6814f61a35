package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkozlov/newsbrief/internal/model"
)

func newTestClient(serverURL, token string) *Client {
	return NewClient(model.LinkedInConfig{
		AccessToken: token,
		BaseURL:     serverURL,
		Timeout:     5,
	})
}

func profileHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer auth header, got %q", got)
		}
		if got := r.Header.Get("X-Restli-Protocol-Version"); got != "2.0.0" {
			t.Errorf("Expected RestLi protocol header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(Profile{
			Sub:   "abc123",
			Name:  "Pavel Kozlov",
			Email: "pavel@example.com",
		})
	}
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/userinfo" {
			t.Errorf("Expected /userinfo path, got %s", r.URL.Path)
		}
		profileHandler(t)(w, r)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	profile, err := client.FetchProfile(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if profile.Sub != "abc123" {
		t.Errorf("Expected sub abc123, got %q", profile.Sub)
	}
	if profile.Name != "Pavel Kozlov" {
		t.Errorf("Expected profile name, got %q", profile.Name)
	}
}

func TestValidateToken_Valid(t *testing.T) {
	server := httptest.NewServer(profileHandler(t))
	defer server.Close()

	status := newTestClient(server.URL, "test-token").ValidateToken(context.Background())
	if !status.Valid {
		t.Fatalf("Expected valid token, got error %q", status.Error)
	}
	if status.UserName != "Pavel Kozlov" || status.UserEmail != "pavel@example.com" {
		t.Errorf("Expected profile fields on status, got %+v", status)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	status := newTestClient(server.URL, "test-token").ValidateToken(context.Background())
	if status.Valid {
		t.Fatal("Expected invalid token")
	}
	if status.Error != "token is invalid or expired" {
		t.Errorf("Expected expiry message, got %q", status.Error)
	}
}

func TestValidateToken_NoToken(t *testing.T) {
	status := newTestClient("http://unused", "").ValidateToken(context.Background())
	if status.Valid {
		t.Fatal("Expected invalid status without token")
	}
	if status.Error != "no access token provided" {
		t.Errorf("Expected missing token message, got %q", status.Error)
	}
}

func TestPost_Success(t *testing.T) {
	var payload ugcPost

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/userinfo":
			profileHandler(t)(w, r)
		case "/ugcPosts":
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST, got %s", r.Method)
			}
			if got := r.Header.Get("Content-Type"); got != "application/json" {
				t.Errorf("Expected JSON content type, got %q", got)
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("Expected decodable payload: %v", err)
			}
			w.Header().Set("X-RestLi-Id", "urn:li:share:42")
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	result := newTestClient(server.URL, "test-token").Post(context.Background(), "hello network")
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	if result.PostID != "urn:li:share:42" {
		t.Errorf("Expected post ID from header, got %q", result.PostID)
	}

	if payload.Author != "urn:li:person:abc123" {
		t.Errorf("Expected author URN from profile sub, got %q", payload.Author)
	}
	if payload.LifecycleState != "PUBLISHED" {
		t.Errorf("Expected PUBLISHED lifecycle, got %q", payload.LifecycleState)
	}
	share, _ := payload.SpecificContent["com.linkedin.ugc.ShareContent"].(map[string]any)
	commentary, _ := share["shareCommentary"].(map[string]any)
	if commentary["text"] != "hello network" {
		t.Errorf("Expected post text in commentary, got %v", commentary["text"])
	}
}

func TestPost_MissingIDHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/userinfo" {
			profileHandler(t)(w, r)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	result := newTestClient(server.URL, "test-token").Post(context.Background(), "text")
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	if result.PostID != "unknown" {
		t.Errorf("Expected unknown post ID, got %q", result.PostID)
	}
}

func TestPost_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/userinfo" {
			profileHandler(t)(w, r)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = fmt.Fprint(w, `{"message":"duplicate"}`)
	}))
	defer server.Close()

	result := newTestClient(server.URL, "test-token").Post(context.Background(), "text")
	if result.Success {
		t.Fatal("Expected failure result")
	}
	if !strings.Contains(result.Error, "HTTP 422") || !strings.Contains(result.Error, "duplicate") {
		t.Errorf("Expected status and body in error, got %q", result.Error)
	}
}

func TestPost_ProfileWithoutSub(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Profile{Name: "No Sub"})
	}))
	defer server.Close()

	result := newTestClient(server.URL, "test-token").Post(context.Background(), "text")
	if result.Success {
		t.Fatal("Expected failure without member ID")
	}
	if result.Error != "could not get user ID from profile" {
		t.Errorf("Expected missing ID message, got %q", result.Error)
	}
}
