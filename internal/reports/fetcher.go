package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zahratravel/agency-backend/pkg/db/models"
)

// RecordStore is the read surface the dashboard needs from persistence.
// Absence of rows is an empty slice, not an error.
type RecordStore interface {
	SalesInWindow(ctx context.Context, win DateWindow, staffID *uuid.UUID) ([]models.SalesRecord, error)
	LeadsInWindow(ctx context.Context, win DateWindow, staffID *uuid.UUID) ([]models.LeadRecord, error)
	ApprovedStaff(ctx context.Context) ([]models.StaffRecord, error)
	AllSales(ctx context.Context) ([]models.SalesRecord, error)
	LeadsSince(ctx context.Context, start time.Time) ([]models.LeadRecord, error)
	SalesBetween(ctx context.Context, start, end time.Time) ([]models.SalesRecord, error)
}

// Fetcher fans the six snapshot reads out concurrently and joins them. Any
// single failure fails the whole fetch; partial snapshots are never returned.
type Fetcher struct {
	store RecordStore
}

func NewFetcher(store RecordStore) *Fetcher {
	return &Fetcher{store: store}
}

func (f *Fetcher) Fetch(ctx context.Context, win DateWindow, staffID *uuid.UUID, now time.Time) (*Snapshot, error) {
	today := midnight(now)
	weekStart := today.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	snap := &Snapshot{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := f.store.SalesInWindow(gCtx, win, staffID)
		if err != nil {
			return err
		}
		snap.Sales = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.store.LeadsInWindow(gCtx, win, staffID)
		if err != nil {
			return err
		}
		snap.Leads = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.store.ApprovedStaff(gCtx)
		if err != nil {
			return err
		}
		snap.Staff = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.store.AllSales(gCtx)
		if err != nil {
			return err
		}
		snap.AllSales = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.store.LeadsSince(gCtx, weekStart)
		if err != nil {
			return err
		}
		snap.WeekLeads = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.store.SalesBetween(gCtx, monthStart, nextMonthStart)
		if err != nil {
			return err
		}
		snap.MonthSales = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
