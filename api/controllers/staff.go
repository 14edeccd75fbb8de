package controllers

import (
	"context"
	"net/http"

	"github.com/zahratravel/agency-backend/api/responses"
	"github.com/zahratravel/agency-backend/internal/reports"
	"github.com/zahratravel/agency-backend/pkg/db/models"
	pkgerrors "github.com/zahratravel/agency-backend/pkg/errors"
	"github.com/zahratravel/agency-backend/pkg/logger"
)

type staffLister interface {
	ApprovedStaff(ctx context.Context) ([]models.StaffRecord, error)
}

// StaffRoster lists approved staff for the dashboard filter dropdown.
func StaffRoster(store staffLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := store.ApprovedStaff(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing staff roster"))
			return
		}

		roster := make([]reports.StaffMember, 0, len(rows))
		for _, row := range rows {
			roster = append(roster, reports.StaffMember{
				ID:   row.ID,
				Name: row.Name,
				Role: row.Role.String(),
			})
		}

		responses.WriteSuccess(w, roster)
	}
}
