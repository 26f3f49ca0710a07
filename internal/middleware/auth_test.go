package middleware

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oliverjumpertz/link-shortener/internal/database"
	"github.com/oliverjumpertz/link-shortener/internal/models"
	"github.com/oliverjumpertz/link-shortener/pkg/logger"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	r := gin.New()
	r.GET("/protected", APIKeyAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func seedSetting(t *testing.T, apiKey string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	digest := sha3.Sum256([]byte(apiKey))
	require.NoError(t, db.Create(&models.Setting{
		ID:                    "DEFAULT_SETTINGS",
		EncryptedGlobalAPIKey: hex.EncodeToString(digest[:]),
	}).Error)
	database.DB = db
}

func TestAPIKeyAuthMissingHeader(t *testing.T) {
	r := newAuthRouter()

	// A nil DB proves the gate rejects before any store access.
	database.DB = nil

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestAPIKeyAuthWrongKey(t *testing.T) {
	r := newAuthRouter()
	seedSetting(t, "right-key")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-api-key", "wrong-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestAPIKeyAuthCorrectKey(t *testing.T) {
	r := newAuthRouter()
	seedSetting(t, "right-key")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-api-key", "right-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestAPIKeyAuthMissingSettingIsInternal(t *testing.T) {
	r := newAuthRouter()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	database.DB = db

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-api-key", "any-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// A dependency problem must not masquerade as unauthorized.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
