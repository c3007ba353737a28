package router

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/loyaltyworks/rewards/internal/pkg/auth"
	"github.com/loyaltyworks/rewards/internal/server/http/handlers"
	testhelpers "github.com/loyaltyworks/rewards/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store, err := pkgAuth.NewCredentialStore("admin:secret:admin", testhelpers.HasherStub{})
	if err != nil {
		t.Fatalf("credential store: %v", err)
	}
	tokens := testhelpers.StrategyStub{ParseFn: func(token string) (pkgAuth.Session, error) {
		if token != "valid" {
			return pkgAuth.Session{}, pkgAuth.ErrInvalidToken
		}
		return pkgAuth.Session{Login: "admin", Role: pkgAuth.RoleAdmin}, nil
	}}
	engine := Setup(testhelpers.ServiceFacadeStub{}, store, tokens, logger)

	body := []byte(`<session><login>admin</login><password>secret</password></session>`)
	req := httptest.NewRequest(http.MethodPost, "/api/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/xml")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for session, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without credentials, got %d", resp.Code)
	}

	authedPaths := []string{
		"/api/customers",
		"/api/customers/CUST000000001001",
		"/api/customers/CUST000000001001/transactions",
		"/api/transactions",
		"/api/transactions/TXN-0000000000AB",
		"/api/rewards",
		"/api/rewards/RW-1",
	}
	for _, path := range authedPaths {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer valid")
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.SetBasicAuth("admin", "secret")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 with basic auth, got %d", resp.Code)
	}
}

var _ handlers.ServiceFacade = testhelpers.ServiceFacadeStub{}
