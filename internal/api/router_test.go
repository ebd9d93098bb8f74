package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Tom0603/SoftwareEngineering-Lecture/config"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/api/handler"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/dedup"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/repository"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/service"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Mode: "release", CORSOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
	}
}

func setupRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repository.InitSchema(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	mr := miniredis.RunT(t)

	repo := repository.NewListingRepository(db)
	images := storage.NewRedisImageStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	svc := service.NewListingService(repo, images, dedup.NewClassifier(dedup.DefaultSynonyms))
	return NewRouter(cfg, handler.New(svc))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"type":        "lost",
		"created_at":  "2026-08-30",
		"title":       "Handy",
		"description": "Schwarzes Handy",
		"room":        "Raum A",
		"category":    "Elektronik",
	}
}

func TestCreateThenFetch(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := doJSON(t, r, http.MethodPost, "/listings", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		UUID  string `json:"uuid"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.UUID)
	assert.Equal(t, "Handy", created.Title)

	w = doJSON(t, r, http.MethodGet, "/listings/"+created.UUID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		UUID     string  `json:"uuid"`
		Title    string  `json:"title"`
		Room     string  `json:"room"`
		B64Image *string `json:"b64_image"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.UUID, got.UUID)
	assert.Equal(t, "Handy", got.Title)
	assert.Equal(t, "Raum A", got.Room)
	assert.Nil(t, got.B64Image)
}

func TestListListings(t *testing.T) {
	r := setupRouter(t, testConfig())

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/listings", validBody()).Code)

	w := doJSON(t, r, http.MethodGet, "/listings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listings []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Nil(t, listings[0]["b64_image"])
}

func TestGetUnknownListing(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := doJSON(t, r, http.MethodGet, "/listings/no-such-uuid", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "listing does not exist"}`, w.Body.String())
}

func TestCreateMissingFields(t *testing.T) {
	r := setupRouter(t, testConfig())

	body := validBody()
	delete(body, "title")
	w := doJSON(t, r, http.MethodPost, "/listings", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Missing required fields"}`, w.Body.String())
}

func TestCreateMalformedJSON(t *testing.T) {
	r := setupRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	// parser details never reach the client
	assert.JSONEq(t, `{"error": "invalid request body"}`, w.Body.String())
}

func TestCreateMalformedDate(t *testing.T) {
	r := setupRouter(t, testConfig())

	body := validBody()
	body["created_at"] = "30.08.2026"
	w := doJSON(t, r, http.MethodPost, "/listings", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuplicateConflictAndForce(t *testing.T) {
	r := setupRouter(t, testConfig())

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/listings", validBody()).Code)

	body := validBody()
	body["title"] = "Smartphone" // synonym-linked to the existing "Handy"
	w := doJSON(t, r, http.MethodPost, "/listings", body)
	require.Equal(t, http.StatusConflict, w.Code)

	var conflict struct {
		Duplicate bool                     `json:"duplicate"`
		Matches   []map[string]interface{} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.True(t, conflict.Duplicate)
	require.NotEmpty(t, conflict.Matches)
	assert.Equal(t, "Handy", conflict.Matches[0]["title"])

	// nothing was written by the conflicting request
	w = doJSON(t, r, http.MethodGet, "/listings", nil)
	var listings []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	assert.Len(t, listings, 1)

	w = doJSON(t, r, http.MethodPost, "/listings?force=true", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteListing(t *testing.T) {
	r := setupRouter(t, testConfig())

	w := doJSON(t, r, http.MethodPost, "/listings", validBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		UUID string `json:"uuid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/listings/"+created.UUID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/listings/"+created.UUID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRequiresTokenWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = "secret"
	r := setupRouter(t, cfg)

	w := doJSON(t, r, http.MethodDelete, "/listings/some-uuid", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
