package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tonmoytt/All-it-shopping-server/internal/models"
	"github.com/tonmoytt/All-it-shopping-server/internal/users"
)

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserStore) InsertUser(_ context.Context, user models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user.ID.Hex(), nil
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(users.NewService(newFakeUserStore()))
	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/jwt", h.IssueToken)
	r.POST("/logout", h.Logout)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupRoute(t *testing.T) {
	r := setupAuthRouter()

	w := postJSON(r, "/signup", gin.H{"name": "Jean", "email": "jean@x.com", "password": "pass"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.UserID == "" {
		t.Errorf("Expected a userId in response, got: %s", w.Body.String())
	}

	// Email en doublon (casse différente) → 409
	w = postJSON(r, "/signup", gin.H{"email": "JEAN@x.com", "password": "pass"})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d", w.Code)
	}

	// Champs manquants → 400
	w = postJSON(r, "/signup", gin.H{"email": "", "password": "pass"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestIssueTokenRoute(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	r := setupAuthRouter()

	// Utilisateur inconnu → 404
	w := postJSON(r, "/jwt", gin.H{"email": "inconnu@x.com"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	if w := postJSON(r, "/signup", gin.H{"email": "jean@x.com", "password": "pass"}); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}

	w = postJSON(r, "/jwt", gin.H{"email": "jean@x.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	cookie := findCookie(w.Result().Cookies(), "token")
	if cookie == nil || cookie.Value == "" {
		t.Fatal("Expected a token cookie")
	}
	if !cookie.HttpOnly {
		t.Error("Expected cookie to be HTTP-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("Expected SameSite=Lax, got %v", cookie.SameSite)
	}
}

func TestLogoutRoute(t *testing.T) {
	r := setupAuthRouter()

	w := postJSON(r, "/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	cookie := findCookie(w.Result().Cookies(), "token")
	if cookie == nil {
		t.Fatal("Expected a token cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Errorf("Expected cleared cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
