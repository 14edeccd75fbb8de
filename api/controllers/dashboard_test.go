package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zahratravel/agency-backend/internal/reports"
	pkgerrors "github.com/zahratravel/agency-backend/pkg/errors"
	"github.com/zahratravel/agency-backend/pkg/logger"
)

type testReportService struct {
	last     reports.Query
	response *reports.Report
	err      error
	calls    int
}

func (s *testReportService) Snapshot(ctx context.Context, q reports.Query) (*reports.Report, error) {
	s.last = q
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.response == nil {
		s.response = &reports.Report{}
	}
	return s.response, nil
}

func TestDashboardReportPassesQueryParams(t *testing.T) {
	stub := &testReportService{
		response: &reports.Report{
			Summary: reports.Summary{
				TotalSales: decimal.NewFromInt(1500),
				TotalLeads: 4,
			},
		},
	}
	handler := DashboardReport(stub, logger.New(logger.Options{ServiceName: "test"}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?preset=month&staffId=6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if stub.last.Preset != "month" {
		t.Fatalf("expected preset month, got %q", stub.last.Preset)
	}
	if stub.last.StaffID != "6ba7b810-9dad-11d1-80b4-00c04fd430c8" {
		t.Fatalf("unexpected staffId %q", stub.last.StaffID)
	}

	var envelope struct {
		Data reports.Report `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Summary.TotalLeads != 4 {
		t.Fatalf("expected totalLeads 4, got %d", envelope.Data.Summary.TotalLeads)
	}
	if !envelope.Data.Summary.TotalSales.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("unexpected totalSales %s", envelope.Data.Summary.TotalSales)
	}
}

func TestDashboardReportTrimsWhitespace(t *testing.T) {
	stub := &testReportService{}
	handler := DashboardReport(stub, logger.New(logger.Options{ServiceName: "test"}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?dateFrom=%202025-01-01%20&dateTo=2025-02-01", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if stub.last.DateFrom != "2025-01-01" {
		t.Fatalf("expected trimmed dateFrom, got %q", stub.last.DateFrom)
	}
}

func TestDashboardReportValidationError(t *testing.T) {
	stub := &testReportService{err: pkgerrors.New(pkgerrors.CodeValidation, "invalid preset")}
	handler := DashboardReport(stub, logger.New(logger.Options{ServiceName: "test"}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?preset=quarter", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "invalid preset" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestDashboardReportInternalErrorHidesDetail(t *testing.T) {
	stub := &testReportService{err: pkgerrors.New(pkgerrors.CodeInternal, "building dashboard snapshot")}
	handler := DashboardReport(stub, logger.New(logger.Options{ServiceName: "test"}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message == "building dashboard snapshot" {
		t.Fatal("internal detail should not surface to clients")
	}
}
