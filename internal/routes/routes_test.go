package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/auth"
)

type nopGateway struct{}

func (nopGateway) CreateIntent(ctx context.Context, amount float64) (string, error) {
	return "secret", nil
}

// newTestRouter builds the full route table. The driver connects lazily, so
// no MongoDB instance is needed as long as requests fail before a store read.
func newTestRouter(t *testing.T) http.Handler {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("client setup failed: %v", err)
	}
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	manager := auth.NewManager("test-secret")
	return SetupRouter(client, "testdb", manager, nopGateway{}, nil)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIssueTokenRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")
}

func TestGuardedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	guarded := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodPatch, "/users/admin/507f1f77bcf86cd799439011"},
		{http.MethodGet, "/users/admin/a@x.com"},
		{http.MethodPatch, "/users/instructor/507f1f77bcf86cd799439011"},
		{http.MethodGet, "/users/instructor/a@x.com"},
		{http.MethodPost, "/classes"},
		{http.MethodPatch, "/classes/507f1f77bcf86cd799439011"},
		{http.MethodPatch, "/classes/507f1f77bcf86cd799439011/deny"},
		{http.MethodPatch, "/feedback/507f1f77bcf86cd799439011"},
		{http.MethodDelete, "/selected-classes/507f1f77bcf86cd799439011"},
		{http.MethodPost, "/create-payment-intent"},
		{http.MethodPost, "/payments"},
	}
	for _, route := range guarded {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
		assert.Contains(t, rec.Body.String(), `"error":true`, "%s %s", route.method, route.path)
	}
}

func TestGuardedRoutesRejectInvalidToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
