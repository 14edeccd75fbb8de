package controllers

import (
	"net/http"
	"strings"

	"github.com/zahratravel/agency-backend/api/responses"
	"github.com/zahratravel/agency-backend/internal/reports"
	"github.com/zahratravel/agency-backend/pkg/logger"
)

// DashboardReport serves the aggregated back-office dashboard. All filtering
// parameters are optional; an empty query means the unbounded window.
func DashboardReport(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		q := reports.Query{
			Preset:   strings.TrimSpace(query.Get("preset")),
			DateFrom: strings.TrimSpace(query.Get("dateFrom")),
			DateTo:   strings.TrimSpace(query.Get("dateTo")),
			StaffID:  strings.TrimSpace(query.Get("staffId")),
		}

		report, err := service.Snapshot(ctx, q)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
