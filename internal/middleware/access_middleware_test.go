package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models"
)

// The missing-key path never touches the role store, so it is testable
// without a database.
func TestRequireKeyMissingHeader(t *testing.T) {
	m := NewAccessMiddleware(nil)

	router := gin.New()
	router.GET("/protected", m.RequireKey(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAccessFromContext(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if _, ok := AccessFromContext(c); ok {
		t.Error("expected no access context on a fresh request")
	}

	want := &models.AccessContext{
		Role:       models.RoleDepartment,
		Department: "Computer Science",
		AccessKey:  "key-1",
	}
	c.Set(accessContextKey, want)

	got, ok := AccessFromContext(c)
	if !ok {
		t.Fatal("expected access context after middleware set it")
	}
	if got.Role != want.Role || got.Department != want.Department || got.AccessKey != want.AccessKey {
		t.Errorf("access context = %+v, want %+v", got, want)
	}
}
