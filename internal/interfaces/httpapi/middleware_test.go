package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://play11.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/prizes/preview", nil)
	req.Header.Set("Origin", "https://play11.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://play11.example.com" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"*"}, next)

	req := httptest.NewRequest(http.MethodOptions, "/v1/prizes/preview", nil)
	req.Header.Set("Origin", "https://play11.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://allowed.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/prizes/preview", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected empty Access-Control-Allow-Origin, got %q", got)
	}
}

func TestRequireInternalJobToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects missing token", func(t *testing.T) {
		handler := RequireInternalJobToken("job-secret", next)
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/reconcile", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		handler := RequireInternalJobToken("job-secret", next)
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/reconcile", nil)
		req.Header.Set("X-Internal-Job-Token", "wrong")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("rejects when unconfigured", func(t *testing.T) {
		handler := RequireInternalJobToken("", next)
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/reconcile", nil)
		req.Header.Set("X-Internal-Job-Token", "anything")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected status 503, got %d", rec.Code)
		}
	})

	t.Run("accepts valid token", func(t *testing.T) {
		handler := RequireInternalJobToken("job-secret", next)
		req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/reconcile", nil)
		req.Header.Set("X-Internal-Job-Token", "job-secret")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "} {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
	for _, path := range []string{"/v1/prizes/preview", "/v1/teams", "/"} {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}
