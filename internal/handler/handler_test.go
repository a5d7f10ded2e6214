package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/fas_dashboard/internal/middleware"
	"github.com/GTDGit/fas_dashboard/internal/repository"
	"github.com/GTDGit/fas_dashboard/internal/service"
	"github.com/GTDGit/fas_dashboard/internal/sse"
	"github.com/GTDGit/fas_dashboard/internal/store"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

const testSecret = "handler-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string            `json:"requestId"`
		Pagination *utils.Pagination `json:"pagination"`
	} `json:"meta"`
}

type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, name string, _ []byte, _ string) (string, error) {
	return "https://bucket.example/" + name, nil
}

// streamRecorder adds the CloseNotifier that gin's Stream requires.
type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool { return r.closed }

type testServer struct {
	router  *gin.Engine
	token   string
	hub     *sse.Hub
	backend *store.MemoryBackend
}

func newTestServer(t *testing.T, uploader service.ObjectUploader) *testServer {
	t.Helper()
	backend := store.NewMemoryBackend()
	productRepo := repository.NewProductRepository(backend)
	scenarioRepo := repository.NewScenarioRepository(backend)
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)
	jwtMw := middleware.NewJWTMiddleware(testSecret)

	handlers := &Handlers{
		Health:   NewHealthHandler("memory", backend),
		Product:  NewProductHandler(service.NewProductService(productRepo, scenarioRepo, notifier)),
		Scenario: NewScenarioHandler(service.NewScenarioService(scenarioRepo, productRepo, notifier)),
		Export:   NewExportHandler(service.NewExportService(productRepo, uploader)),
		Stats:    NewStatsHandler(service.NewStatsService(productRepo, scenarioRepo)),
		SSE:      NewSSEHandler(hub, testSecret, jwtMw.Limiter()),
	}
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	SetupRoutes(router, handlers, jwtMw)

	token, err := utils.GenerateJWT(testSecret, "analyst-1", "analyst@example.com", time.Hour)
	require.NoError(t, err)
	return &testServer{router: router, token: token, hub: hub, backend: backend}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealthIsPublic(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"driver":"memory"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
}

func TestListProducts(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/v1/products?search=salam&pageSize=1&page=1", nil)
	require.Equal(t, 200, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, utils.Pagination{Page: 1, Limit: 1, TotalItems: 2, TotalPages: 2}, *env.Meta.Pagination)

	var data struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Products, 1)
	assert.Equal(t, "PROD-006", data.Products[0].ID)

	// Malformed numbers fall back to the defaults.
	w = s.do(t, http.MethodGet, "/v1/products?page=abc&pageSize=-4", nil)
	require.Equal(t, 200, w.Code)
	env = decode(t, w)
	assert.Equal(t, 0, env.Meta.Pagination.Page)
	assert.Equal(t, 25, env.Meta.Pagination.Limit)
	assert.Equal(t, 6, env.Meta.Pagination.TotalItems)
}

func TestCreateAndGetProduct(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/v1/products", map[string]interface{}{
		"name":  "Tawarruq Liquidity",
		"type":  "Murabaha and Other Deferred Payment Sales",
		"terms": []map[string]string{{"value": "90", "unit": "d", "description": "Tenor"}},
	})
	require.Equal(t, 201, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"PROD-007"`)

	w = s.do(t, http.MethodGet, "/v1/products/PROD-007", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Tawarruq Liquidity"`)

	w = s.do(t, http.MethodGet, "/v1/products/PROD-404", nil)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decode(t, w).Error.Code)
}

func TestCreateProductValidation(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/v1/products", map[string]interface{}{
		"name":  "Bad",
		"terms": []map[string]string{{"value": "1", "unit": "GBP"}},
	})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "INVALID_TERM_UNIT", decode(t, w).Error.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+s.token)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestDeleteProductInUse(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/v1/scenarios", map[string]string{
		"title":           "Lease review",
		"scenarioType":    "product",
		"selectedProduct": "PROD-002",
	})
	require.Equal(t, 201, w.Code)

	w = s.do(t, http.MethodDelete, "/v1/products/PROD-002", nil)
	require.Equal(t, 409, w.Code)
	env := decode(t, w)
	assert.Equal(t, "PRODUCT_IN_USE", env.Error.Code)
	assert.JSONEq(t, `{"productId":"PROD-002","scenarioIds":["REF-005"]}`, string(env.Error.Details))

	w = s.do(t, http.MethodDelete, "/v1/products/PROD-002?force=true", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"danglingScenarios":["REF-005"]`)
}

func TestScenarioEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/v1/scenarios/preview", map[string]string{"subType": "enhancement"})
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Suggested Enhancements")

	w = s.do(t, http.MethodGet, "/v1/scenarios?type=product", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, 1, decode(t, w).Meta.Pagination.TotalItems)

	w = s.do(t, http.MethodPost, "/v1/scenarios", map[string]string{"scenarioType": "other"})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "INVALID_SCENARIO_TYPE", decode(t, w).Error.Code)

	w = s.do(t, http.MethodGet, "/v1/scenarios/REF-004/report", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, `attachment; filename="scenario-ref-004.txt"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Istisna for Construction Project\n"))

	w = s.do(t, http.MethodDelete, "/v1/scenarios/REF-004", nil)
	require.Equal(t, 200, w.Code)
	w = s.do(t, http.MethodGet, "/v1/scenarios/REF-004", nil)
	assert.Equal(t, 404, w.Code)
}

func TestStatsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, 200, w.Code)

	var stats service.DashboardStats
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &stats))
	assert.Equal(t, 6, stats.ProductCount)
	assert.Equal(t, "2.67", stats.AverageTerms)
}

func TestExportEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/v1/products/export", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, service.XLSXMediaType, w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())

	w = s.do(t, http.MethodGet, "/v1/products/template", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "product-template.xlsx")

	w = s.do(t, http.MethodPost, "/v1/products/export/archive", nil)
	assert.Equal(t, 503, w.Code)
	assert.Equal(t, "EXPORT_DISABLED", decode(t, w).Error.Code)

	enabled := newTestServer(t, fakeUploader{})
	w = enabled.do(t, http.MethodPost, "/v1/products/export/archive", nil)
	require.Equal(t, 201, w.Code)
	assert.Contains(t, w.Body.String(), `"location":"https://bucket.example/products-`)
}

func TestCatalogEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, http.MethodGet, "/v1/products/catalog", nil)
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"defaultTermUnit":"mo"`)
}

func TestEventsRequiresToken(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/events?token=bogus", nil)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
	assert.Equal(t, 0, s.hub.ClientCount())
}

func TestEventsStreamsUntilClientLeaves(t *testing.T) {
	s := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/v1/events?token="+s.token, nil).WithContext(ctx)
	w := &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}

	done := make(chan struct{})
	go func() {
		s.router.ServeHTTP(w, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after the client left")
	}
	assert.Equal(t, 0, s.hub.ClientCount())
	assert.Contains(t, w.Body.String(), "event:connected")
}

func TestEventsShareInvalidAuthLimit(t *testing.T) {
	s := newTestServer(t, nil)

	for i := 0; i < middleware.DefaultInvalidAuthLimit; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/events?token=bogus", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		require.Equal(t, 401, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/events?token="+s.token, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, 429, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode(t, w).Error.Code)
	assert.Equal(t, 0, s.hub.ClientCount())

	// Failures on the stream also block bearer routes from the same address.
	w = s.do(t, http.MethodGet, "/v1/products", nil)
	assert.Equal(t, 429, w.Code)
}

func TestQuarantineEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/v1/scenarios/quarantine", nil)
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"entries":[]}`, string(decode(t, w).Data))

	require.NoError(t, s.backend.Write(context.Background(), store.Products, []byte("{not json")))

	w = s.do(t, http.MethodGet, "/v1/products/quarantine", nil)
	require.Equal(t, 200, w.Code)
	var body struct {
		Entries []store.QuarantineEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &body))
	require.Len(t, body.Entries, 1)
	assert.Equal(t, store.Products, body.Entries[0].Collection)
	assert.Equal(t, "{not json", body.Entries[0].RawText)

	// The corrupt value reads as an empty collection, not a reseed.
	w = s.do(t, http.MethodGet, "/v1/products", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, 0, decode(t, w).Meta.Pagination.TotalItems)
}
