package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cartwise/backend/config"
	"github.com/cartwise/backend/internal/domain"
	"github.com/cartwise/backend/internal/infrastructure/cache"
	"github.com/cartwise/backend/internal/taxonomy"
	"github.com/cartwise/backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	// Run tests
	exitCode := m.Run()

	// Exit with the test result code
	os.Exit(exitCode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*", "https://app.cartwise.io"},
		},
		Cache: config.CacheConfig{
			Type: "memory",
		},
	}
}

// setupTestRouter creates a test router with the built-in taxonomy and no
// remote fallback
func setupTestRouter() *gin.Engine {
	matching := usecase.NewMatchingService(taxonomy.Default(), usecase.DefaultMatchConfig())

	handler := NewHandler(matching, nil)
	if handler == nil {
		panic("setupTestRouter: NewHandler returned nil")
	}

	router := SetupRouter(testConfig(), handler)
	if router == nil {
		panic("setupTestRouter: SetupRouter returned nil *gin.Engine")
	}

	return router
}

// mockCategoryAPI is a mock implementation of domain.CategoryAPI
type mockCategoryAPI struct {
	page  *domain.CategoryPage
	err   error
	calls atomic.Int32
}

func (m *mockCategoryAPI) GetCategories(ctx context.Context, pageSize int) (*domain.CategoryPage, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockCategoryAPI) GetCategoryByID(ctx context.Context, id string) (*domain.RemoteCategory, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	for _, category := range m.page.Categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// setupTestRouterWithFallback creates a test router whose remote fallback is
// backed by the given mock API and a real memory cache
func setupTestRouterWithFallback(t *testing.T, api *mockCategoryAPI) *gin.Engine {
	t.Helper()

	memCache := cache.NewMemoryCache(cache.Options{})
	t.Cleanup(memCache.Close)

	matching := usecase.NewMatchingService(taxonomy.Default(), usecase.DefaultMatchConfig())
	lookup := usecase.NewCategoryLookupService(api, memCache, usecase.CategoryLookupConfig{PageSize: 50})

	return SetupRouter(testConfig(), NewHandler(matching, lookup))
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "body: %s", w.Body.String())
	return response
}

// TestHealthCheckEndpoint tests the health check endpoint
func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter()

		w := doGet(router, "/health")
		require.Equal(t, http.StatusOK, w.Code)

		response := decodeBody(t, w)
		assert.Equal(t, "healthy", response["status"])
		assert.Equal(t, "cartwise-backend", response["service"])
		assert.Equal(t, float64(taxonomy.Default().Len()), response["categories"])
		assert.Equal(t, false, response["fallbackEnabled"])
		assert.NotContains(t, response, "cachedCategories")

		version, ok := response["version"].(string)
		assert.True(t, ok && strings.TrimSpace(version) != "", "version = %v, want non-empty string", response["version"])
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter()

		methods := []string{"POST", "PUT", "DELETE", "PATCH"}

		for _, method := range methods {
			req, _ := http.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestListCategoriesEndpoint(t *testing.T) {
	router := setupTestRouter()
	store := taxonomy.Default()

	t.Run("returns picker subset by default", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories")
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Categories []domain.CategoryEntry `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Categories, len(store.Picker()))
		assert.Equal(t, store.Picker()[0].ID, response.Categories[0].ID)
	})

	t.Run("returns whole taxonomy with all=true", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories?all=true")
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Categories []domain.CategoryEntry `json:"categories"`
			Groups     []string               `json:"groups"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Categories, store.Len())
		assert.Equal(t, store.GroupNames(), response.Groups)
	})

	t.Run("returns one group", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories?group="+taxonomy.GroupTV)
		require.Equal(t, http.StatusOK, w.Code)

		entries, _ := store.Group(taxonomy.GroupTV)
		response := decodeBody(t, w)
		assert.Equal(t, taxonomy.GroupTV, response["group"])
		assert.Len(t, response["categories"], len(entries))
	})

	t.Run("unknown group is 404", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories?group=garden")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMatchCategoryEndpoint(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantID     string
	}{
		{"laptop", "/api/v1/categories/match?q=laptop", http.StatusOK, "abcat0502000"},
		{"tv", "/api/v1/categories/match?q=tv", http.StatusOK, "abcat0101000"},
		{"no match", "/api/v1/categories/match?q=nonexistentwidget123", http.StatusNotFound, ""},
		{"missing query", "/api/v1/categories/match", http.StatusBadRequest, ""},
		{"punctuation only", "/api/v1/categories/match?q=%21%21%21", http.StatusBadRequest, ""},
		{"bad threshold", "/api/v1/categories/match?q=laptop&threshold=abc", http.StatusBadRequest, ""},
		{"threshold out of range", "/api/v1/categories/match?q=laptop&threshold=1.5", http.StatusBadRequest, ""},
		{"threshold above score", "/api/v1/categories/match?q=laptop&threshold=0.95", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, tt.path)
			require.Equal(t, tt.wantStatus, w.Code, "body: %s", w.Body.String())

			response := decodeBody(t, w)
			if tt.wantID == "" {
				assert.NotEmpty(t, response["error"])
				return
			}
			assert.Equal(t, tt.wantID, response["id"])
			assert.InDelta(t, 0.9, response["score"], 1e-9)
			assert.Equal(t, false, response["isExactMatch"])
		})
	}
}

func TestSearchCategoriesEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("returns ranked results within limit", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories/search?q=gaming&limit=3")
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Query   string                `json:"query"`
			Results []domain.MatchSummary `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "gaming", response.Query)
		require.NotEmpty(t, response.Results)
		assert.LessOrEqual(t, len(response.Results), 3)
		for i := 1; i < len(response.Results); i++ {
			assert.GreaterOrEqual(t, response.Results[i-1].Score, response.Results[i].Score)
		}
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories/search?q=nonexistentwidget123")
		require.Equal(t, http.StatusOK, w.Code)

		response := decodeBody(t, w)
		assert.Equal(t, []any{}, response["results"])
	})

	t.Run("invalid limit is 400", func(t *testing.T) {
		for _, limit := range []string{"0", "-1", "ten"} {
			w := doGet(router, "/api/v1/categories/search?q=tv&limit="+limit)
			assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
		}
	})
}

func TestSuggestCategoryEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("falls back to words of the search", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories/suggest?q=buy+a+new+gaming+mouse")
		require.Equal(t, http.StatusOK, w.Code)

		response := decodeBody(t, w)
		assert.Equal(t, "pcmcat1565886226766", response["id"])
	})

	t.Run("no suggestion is 404", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories/suggest?q=nonexistentwidget123")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetCategoryEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("known id", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories/abcat0502000")
		require.Equal(t, http.StatusOK, w.Code)

		response := decodeBody(t, w)
		assert.Equal(t, "Laptops", response["name"])
		assert.NotContains(t, response, "keywords")
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories/abcat9999999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRemoteCategoryEndpoints(t *testing.T) {
	page := &domain.CategoryPage{
		Categories: []domain.RemoteCategory{
			{ID: "pcmcat1", Name: "Drones & Accessories", Active: true},
			{ID: "pcmcat2", Name: "Drone Batteries", Active: true},
			{ID: "pcmcat3", Name: "Turntables", Active: true},
		},
		Total: 3,
	}

	t.Run("disabled fallback is 503", func(t *testing.T) {
		router := setupTestRouter()

		for _, path := range []string{"/api/v1/remote/categories?q=drone", "/api/v1/remote/categories/pcmcat1"} {
			w := doGet(router, path)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)

			response := decodeBody(t, w)
			assert.Equal(t, domain.ErrFallbackDisabled.Error(), response["error"])
		}
	})

	t.Run("search returns name matches", func(t *testing.T) {
		api := &mockCategoryAPI{page: page}
		router := setupTestRouterWithFallback(t, api)

		w := doGet(router, "/api/v1/remote/categories?q=drone")
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Results []domain.RemoteCategory `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Results, 2)
		assert.Equal(t, "pcmcat1", response.Results[0].ID)
		assert.Equal(t, "pcmcat2", response.Results[1].ID)
	})

	t.Run("id lookup is served from cache after search", func(t *testing.T) {
		api := &mockCategoryAPI{page: page}
		router := setupTestRouterWithFallback(t, api)

		require.Equal(t, http.StatusOK, doGet(router, "/api/v1/remote/categories?q=drone").Code)
		calls := api.calls.Load()

		w := doGet(router, "/api/v1/remote/categories/pcmcat2")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, calls, api.calls.Load(), "cached id should not hit the API")

		response := decodeBody(t, w)
		assert.Equal(t, "Drone Batteries", response["name"])
	})

	t.Run("health reports cached remote categories", func(t *testing.T) {
		api := &mockCategoryAPI{page: page}
		router := setupTestRouterWithFallback(t, api)

		response := decodeBody(t, doGet(router, "/health"))
		assert.Equal(t, true, response["fallbackEnabled"])
		assert.Equal(t, float64(0), response["cachedCategories"])

		require.Equal(t, http.StatusOK, doGet(router, "/api/v1/remote/categories?q=drone").Code)

		response = decodeBody(t, doGet(router, "/health"))
		assert.Equal(t, float64(2), response["cachedCategories"])
	})

	t.Run("remote failure looks like no match", func(t *testing.T) {
		api := &mockCategoryAPI{page: page, err: errors.New("connection refused")}
		router := setupTestRouterWithFallback(t, api)

		w := doGet(router, "/api/v1/remote/categories?q=drone")
		require.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, []any{}, response["results"])

		w = doGet(router, "/api/v1/remote/categories/pcmcat1")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestCORSIntegration tests CORS headers work end-to-end with full router
func TestCORSIntegration(t *testing.T) {
	t.Run("health endpoint has CORS for the web app", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "https://app.cartwise.io")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.cartwise.io", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("category endpoint has CORS for any localhost port", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/categories/match?q=tv", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

// TestRecoveryMiddleware tests panic recovery
func TestRecoveryMiddleware(t *testing.T) {
	t.Run("recovers from panic without crashing server", func(t *testing.T) {
		router := setupTestRouter()

		// Add a test route that panics
		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		w := doGet(router, "/panic")

		// Gin's default recovery returns 500
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// TestAPIVersioning tests that API v1 routes are correctly versioned
func TestAPIVersioning(t *testing.T) {
	router := setupTestRouter()

	t.Run("v1 routes are accessible", func(t *testing.T) {
		w := doGet(router, "/api/v1/categories/match?q=tv")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-versioned routes return 404", func(t *testing.T) {
		for _, path := range []string{"/api/categories/match?q=tv", "/categories/match?q=tv"} {
			w := doGet(router, path)
			assert.Equal(t, http.StatusNotFound, w.Code, path)
		}
	})
}

func TestRateLimitIntegration(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.PerIP = 1

	matching := usecase.NewMatchingService(taxonomy.Default(), usecase.DefaultMatchConfig())
	router := SetupRouter(cfg, NewHandler(matching, nil))

	assert.Equal(t, http.StatusOK, doGet(router, "/api/v1/categories/match?q=tv").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "/api/v1/categories/match?q=tv").Code)

	// Health is outside the limited group
	assert.Equal(t, http.StatusOK, doGet(router, "/health").Code)
}

// TestJSONResponses tests that all responses are valid JSON
func TestJSONResponses(t *testing.T) {
	endpoints := []string{
		"/health",
		"/api/v1/categories",
		"/api/v1/categories/match?q=laptop",
		"/api/v1/categories/match?q=nonexistentwidget123",
		"/api/v1/categories/search?q=camera",
		"/api/v1/categories/suggest?q=mouse",
		"/api/v1/categories/abcat0502000",
		"/api/v1/remote/categories?q=drone",
	}

	router := setupTestRouter()
	for _, path := range endpoints {
		t.Run(path, func(t *testing.T) {
			w := doGet(router, path)

			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var response map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "Response should be valid JSON")
		})
	}
}
