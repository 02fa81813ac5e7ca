package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"realty-server/db"
	"realty-server/entities"
	"realty-server/middleware"
	"realty-server/repositories"
	"realty-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, repositories.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&entities.User{}))

	userRepo := repositories.NewUserGormRepository(&db.GormDatabase{DB: gdb})

	r := gin.New()
	r.GET("/protected", middleware.RequireUser(userRepo, testSecret), func(c *gin.Context) {
		user := c.MustGet(middleware.CurrentUserKey).(*entities.User)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})

	return r, userRepo
}

func issueToken(t *testing.T, claims map[string]any, ttl time.Duration) string {
	t.Helper()
	token, err := utils.CreateAccessToken(claims, ttl, testSecret)
	require.NoError(t, err)
	return token
}

func TestRequireUser(t *testing.T) {
	r, userRepo := newTestRouter(t)
	require.NoError(t, userRepo.Create(&entities.User{Username: "alice", HashedPassword: "h"}))

	wrongSecretToken, err := utils.CreateAccessToken(map[string]any{"sub": "alice"}, time.Minute, "other-secret")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong signing secret",
			authHeader: "Bearer " + wrongSecretToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + issueToken(t, map[string]any{"sub": "alice"}, -time.Minute),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "token without sub",
			authHeader: "Bearer " + issueToken(t, map[string]any{"role": "admin"}, time.Minute),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token for unknown user",
			authHeader: "Bearer " + issueToken(t, map[string]any{"sub": "bob"}, time.Minute),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + issueToken(t, map[string]any{"sub": "alice"}, time.Minute),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"username":"alice"`)
			}
		})
	}
}
