package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zahratravel/agency-backend/internal/reports"
	pkgAuth "github.com/zahratravel/agency-backend/pkg/auth"
	"github.com/zahratravel/agency-backend/pkg/config"
	"github.com/zahratravel/agency-backend/pkg/db/models"
	"github.com/zahratravel/agency-backend/pkg/enums"
	"github.com/zahratravel/agency-backend/pkg/logger"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type stubStore struct{}

func (stubStore) SalesInWindow(context.Context, reports.DateWindow, *uuid.UUID) ([]models.SalesRecord, error) {
	return nil, nil
}

func (stubStore) LeadsInWindow(context.Context, reports.DateWindow, *uuid.UUID) ([]models.LeadRecord, error) {
	return nil, nil
}

func (stubStore) ApprovedStaff(context.Context) ([]models.StaffRecord, error) {
	return nil, nil
}

func (stubStore) AllSales(context.Context) ([]models.SalesRecord, error) {
	return nil, nil
}

func (stubStore) LeadsSince(context.Context, time.Time) ([]models.LeadRecord, error) {
	return nil, nil
}

func (stubStore) SalesBetween(context.Context, time.Time, time.Time) ([]models.SalesRecord, error) {
	return nil, nil
}

type stubReportService struct{}

func (stubReportService) Snapshot(context.Context, reports.Query) (*reports.Report, error) {
	return &reports.Report{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60},
		Reports: config.ReportsConfig{
			RequestTimeout: 5 * time.Second,
		},
	}
}

func testHandler(t *testing.T, dbErr error) http.Handler {
	t.Helper()
	return NewRouter(
		testConfig(),
		logger.New(logger.Options{ServiceName: "test"}),
		stubPinger{err: dbErr},
		stubStore{},
		stubReportService{},
		prometheus.NewRegistry(),
	)
}

func bearerFor(t *testing.T, role enums.UserRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testConfig().JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return "Bearer " + token
}

func TestHealthLive(t *testing.T) {
	handler := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestHealthReadyReportsDBFailure(t *testing.T) {
	handler := testHandler(t, context.DeadlineExceeded)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestDashboardRequiresAuth(t *testing.T) {
	handler := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestDashboardRejectsStaffRole(t *testing.T) {
	handler := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", bearerFor(t, enums.UserRoleStaff))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestDashboardAllowsAdmin(t *testing.T) {
	handler := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?preset=month", nil)
	req.Header.Set("Authorization", bearerFor(t, enums.UserRoleAdmin))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestStaffRosterAllowsSuperadmin(t *testing.T) {
	handler := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/staff", nil)
	req.Header.Set("Authorization", bearerFor(t, enums.UserRoleSuperAdmin))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestMetricsExposed(t *testing.T) {
	handler := testHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
