package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tonmoytt/All-it-shopping-server/internal/middleware"
	"github.com/tonmoytt/All-it-shopping-server/internal/models"
	"github.com/tonmoytt/All-it-shopping-server/internal/orders"
	"github.com/tonmoytt/All-it-shopping-server/internal/utils"
)

// stubCartStore n'implémente que la partie panier de orders.Store, le reste
// vient de l'interface embarquée (jamais appelé ici).
type stubCartStore struct {
	orders.Store
	posts []models.CartPost
}

func (s *stubCartStore) HasCartPost(_ context.Context, userID, productID string) (bool, error) {
	for _, p := range s.posts {
		if p.UserID == userID && p.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubCartStore) InsertCartPost(_ context.Context, post models.CartPost) (string, error) {
	post.ID = primitive.NewObjectID()
	s.posts = append(s.posts, post)
	return post.ID.Hex(), nil
}

func (s *stubCartStore) ListCartPosts(_ context.Context, userID string) ([]models.CartPost, error) {
	out := []models.CartPost{}
	for _, p := range s.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubCartStore) DeleteCartPost(_ context.Context, postID string) (int64, error) {
	for i, p := range s.posts {
		if p.ID.Hex() == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func setupCartRouter() (*gin.Engine, *stubCartStore) {
	gin.SetMode(gin.TestMode)
	store := &stubCartStore{}
	h := NewCartHandler(orders.NewService(store))
	r := gin.New()
	authed := r.Group("", middleware.AuthRequired())
	authed.POST("/posts/:userId", h.AddPost)
	authed.GET("/posts/:userId", h.GetPosts)
	authed.DELETE("/posts/:postId", h.DeletePost)
	return r, store
}

func sessionCookie(t *testing.T, userID primitive.ObjectID) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateJWT(models.User{ID: userID, Email: "jean@x.com"})
	if err != nil {
		t.Fatalf("Token generation failed: %v", err)
	}
	return &http.Cookie{Name: "token", Value: token}
}

func doJSON(r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartRoutes_RequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	r, _ := setupCartRouter()

	// Pas de cookie → 401
	w := doJSON(r, http.MethodGet, "/posts/abc", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without cookie, got %d", w.Code)
	}

	// Cookie forgé avec un mauvais secret → 401
	t.Setenv("JWT_SECRET", "autre_secret")
	cookie := sessionCookie(t, primitive.NewObjectID())
	t.Setenv("JWT_SECRET", "test_secret")
	w = doJSON(r, http.MethodGet, "/posts/abc", "", cookie)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with forged cookie, got %d", w.Code)
	}
}

func TestAddPostRoute(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	r, _ := setupCartRouter()

	uid := primitive.NewObjectID()
	cookie := sessionCookie(t, uid)
	body := `{"userId":"` + uid.Hex() + `","productId":"p1","name":"Clavier","price":49.9,"quantity":1}`

	// userId du chemin ≠ identité du token → 403
	w := doJSON(r, http.MethodPost, "/posts/"+primitive.NewObjectID().Hex(), body, cookie)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/posts/"+uid.Hex(), body, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Même paire user/produit → 409
	w = doJSON(r, http.MethodPost, "/posts/"+uid.Hex(), body, cookie)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
	}

	// userId du corps ≠ identité → 400
	other := `{"userId":"` + primitive.NewObjectID().Hex() + `","productId":"p2"}`
	w = doJSON(r, http.MethodPost, "/posts/"+uid.Hex(), other, cookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeletePostRoute(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	r, store := setupCartRouter()

	uid := primitive.NewObjectID()
	cookie := sessionCookie(t, uid)

	w := doJSON(r, http.MethodDelete, "/posts/pas-un-objectid", "", cookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed id, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/posts/"+primitive.NewObjectID().Hex(), "", cookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", w.Code)
	}

	postID, _ := store.InsertCartPost(context.Background(), models.CartPost{UserID: uid.Hex(), ProductID: "p1"})
	w = doJSON(r, http.MethodDelete, "/posts/"+postID, "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.posts) != 0 {
		t.Errorf("Expected post to be removed, got %d left", len(store.posts))
	}
}
