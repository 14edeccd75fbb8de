package reports

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/zahratravel/agency-backend/pkg/db/models"
	pkgerrors "github.com/zahratravel/agency-backend/pkg/errors"
	"github.com/zahratravel/agency-backend/pkg/metrics"
)

// Query carries the raw dashboard parameters as they arrive on the wire.
type Query struct {
	Preset   string
	DateFrom string
	DateTo   string
	StaffID  string
}

// Service builds dashboard report snapshots.
type Service interface {
	Snapshot(ctx context.Context, q Query) (*Report, error)
}

type service struct {
	fetcher *Fetcher
	metrics *metrics.ReportMetrics
	now     func() time.Time
}

// Option customizes the service; used by tests to pin the clock.
type Option func(*service)

// WithClock overrides the ambient clock.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService builds a report service over the provided store.
func NewService(store RecordStore, reportMetrics *metrics.ReportMetrics, opts ...Option) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "record store required")
	}
	svc := &service{
		fetcher: NewFetcher(store),
		metrics: reportMetrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) Snapshot(ctx context.Context, q Query) (*Report, error) {
	now := s.now()

	win, err := ResolveWindow(q.Preset, q.DateFrom, q.DateTo, now)
	if err != nil {
		return nil, err
	}

	var staffID *uuid.UUID
	if q.StaffID != "" {
		parsed, err := uuid.Parse(q.StaffID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid staffId")
		}
		staffID = &parsed
	}

	label := windowLabel(q)
	started := now

	snap, err := s.fetcher.Fetch(ctx, win, staffID, now)
	if err != nil {
		s.metrics.IncFailure(label)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building dashboard snapshot")
	}

	report := assemble(snap, now)

	s.metrics.ObserveDuration(label, time.Since(started))
	s.metrics.IncSuccess(label)
	return report, nil
}

// assemble runs the aggregators over the joined snapshot. Each consumes the
// snapshot independently; none feeds another.
func assemble(snap *Snapshot, now time.Time) *Report {
	ranked := BuildLeaderboard(snap.Staff, snap.Sales, snap.Leads)

	roster := make([]StaffMember, 0, len(snap.Staff))
	for _, member := range snap.Staff {
		roster = append(roster, StaffMember{
			ID:   member.ID,
			Name: member.Name,
			Role: member.Role.String(),
		})
	}

	return &Report{
		Summary: Summarize(snap),
		Charts: Charts{
			SalesTrend:       BuildTrend(snap.AllSales, snap.Leads, now),
			LeadsBySource:    LeadsBySource(snap.Leads),
			PaymentBreakdown: SalesByPaymentStatus(snap.Sales),
			StaffStats:       ranked,
		},
		Tables: Tables{
			TopStaff:         TopStaff(ranked),
			RecentSales:      RecentSales(snap.Sales),
			OverdueFollowUps: OverdueFollowUps(snap.Leads, now),
			UpcomingTrips:    UpcomingTrips(snap.Sales, now),
		},
		Staff: roster,
	}
}

// RecentSales returns the five most recently closed sales in the reporting
// window, newest first. Sales without a close date sort last.
func RecentSales(sales []models.SalesRecord) []SaleItem {
	ordered := make([]models.SalesRecord, len(sales))
	copy(ordered, sales)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].DateClosed, ordered[j].DateClosed
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return saleItems(ordered, worklistLimit)
}

func windowLabel(q Query) string {
	switch {
	case q.Preset != "":
		return q.Preset
	case q.DateFrom != "" || q.DateTo != "":
		return "custom"
	default:
		return "all"
	}
}
