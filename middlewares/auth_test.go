package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

const testSecret = "test-secret"

func staffToken(t *testing.T) string {
	t.Helper()
	restID := uint(1)
	u := &entity.User{Email: "s@e.com", Name: "S", Role: identity.RoleStaff, RestaurantID: &restID}
	u.ID = 5
	token, err := utils.GenerateToken(u, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func newRouter(handler gin.HandlerFunc, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, handler)
	r.GET("/probe", handlers...)
	return r
}

func probeIdentity(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": id.Authenticated,
		"role":          id.Role,
		"tableNumber":   id.TableNumber,
	})
}

func doProbe(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_RequiresToken(t *testing.T) {
	r := newRouter(probeIdentity, AuthMiddleware(testSecret))

	rec := doProbe(r, "/probe", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doProbe(r, "/probe", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doProbe(r, "/probe", staffToken(t))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
}

func TestAuthMiddleware_RoleGate(t *testing.T) {
	r := newRouter(probeIdentity, AuthMiddleware(testSecret, identity.RoleAdmin))

	rec := doProbe(r, "/probe", staffToken(t))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	r2 := newRouter(probeIdentity, AuthMiddleware(testSecret, identity.RoleStaff, identity.RoleAdmin))
	rec = doProbe(r2, "/probe", staffToken(t))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_DegradesToGuest(t *testing.T) {
	r := newRouter(probeIdentity, OptionalAuthMiddleware(testSecret))

	// No token: guest built from request parameters.
	rec := doProbe(r, "/probe?tableNumber=9", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
	assert.Contains(t, rec.Body.String(), `"tableNumber":"9"`)

	// Invalid token degrades silently instead of failing.
	rec = doProbe(r, "/probe?tableNumber=9", "not-a-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)

	// Valid token wins over guest hints.
	rec = doProbe(r, "/probe?tableNumber=9", staffToken(t))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.Contains(t, rec.Body.String(), `"role":"staff"`)
}
