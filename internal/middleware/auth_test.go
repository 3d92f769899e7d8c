package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-backend/internal/models"
	"storefront-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestTokens() *token.Manager {
	return token.NewManager(
		"test-access-secret-key-for-tests",
		"test-refresh-secret-key-for-tests",
		15*time.Minute,
		168*time.Hour,
	)
}

type mockUserFinder struct {
	findByIDFunc func(id uint) (*models.User, error)
}

func (m *mockUserFinder) FindByID(id uint) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, errors.New("unexpected call to FindByID")
}

func protectedRouter(tokens *token.Manager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   UserID(c),
			"username": c.GetString("username"),
			"isAdmin":  c.GetBool("isAdmin"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, accessToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if accessToken != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: accessToken})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	r := protectedRouter(newTestTokens())

	w := doRequest(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "authentication required" {
		t.Errorf("message = %v, want %q", body["message"], "authentication required")
	}
	if _, ok := body["expired"]; ok {
		t.Error("missing credential must not carry the expired flag")
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	tokens := newTestTokens()
	expired := token.NewManager(
		"test-access-secret-key-for-tests",
		"test-refresh-secret-key-for-tests",
		-time.Minute,
		168*time.Hour,
	)
	pair, err := expired.GeneratePair(1, "alice", false)
	if err != nil {
		t.Fatalf("GeneratePair() error = %v", err)
	}

	r := protectedRouter(tokens)
	w := doRequest(r, pair.AccessToken)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	// The flag tells the client a renewal attempt is worthwhile.
	if body["expired"] != true {
		t.Errorf("body = %v, want expired=true", body)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r := protectedRouter(newTestTokens())

	w := doRequest(r, "garbage.token.value")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if _, ok := body["expired"]; ok {
		t.Error("malformed credential must not carry the expired flag")
	}
}

func TestRequireAuth_ValidTokenInjectsIdentity(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.GeneratePair(42, "alice", true)
	if err != nil {
		t.Fatalf("GeneratePair() error = %v", err)
	}

	r := protectedRouter(tokens)
	w := doRequest(r, pair.AccessToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		UserID   uint   `json:"userID"`
		Username string `json:"username"`
		IsAdmin  bool   `json:"isAdmin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.UserID != 42 || body.Username != "alice" || !body.IsAdmin {
		t.Errorf("context identity = %+v, want 42/alice/admin", body)
	}
}

func adminRouter(tokens *token.Manager, users UserFinder) *gin.Engine {
	r := gin.New()
	r.GET("/admin", RequireAuth(tokens), RequireAdmin(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdmin_DemotedMidSession(t *testing.T) {
	tokens := newTestTokens()
	// Token still claims admin, but the flag was flipped in storage.
	pair, err := tokens.GeneratePair(5, "dave", true)
	if err != nil {
		t.Fatalf("GeneratePair() error = %v", err)
	}

	users := &mockUserFinder{
		findByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "dave", IsAdmin: false}, nil
		},
	}

	r := adminRouter(tokens, users)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 despite isAdmin=true claim", w.Code)
	}
}

func TestRequireAdmin_CurrentAdminPasses(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.GeneratePair(5, "dave", true)
	if err != nil {
		t.Fatalf("GeneratePair() error = %v", err)
	}

	users := &mockUserFinder{
		findByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "dave", IsAdmin: true}, nil
		},
	}

	r := adminRouter(tokens, users)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequireAdmin_DeletedUser(t *testing.T) {
	tokens := newTestTokens()
	pair, err := tokens.GeneratePair(9, "ghost", true)
	if err != nil {
		t.Fatalf("GeneratePair() error = %v", err)
	}

	users := &mockUserFinder{
		findByIDFunc: func(id uint) (*models.User, error) {
			return nil, errors.New("record not found")
		},
	}

	r := adminRouter(tokens, users)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
