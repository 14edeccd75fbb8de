package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zahratravel/agency-backend/pkg/db/models"
)

type fakeStore struct {
	sales      []models.SalesRecord
	leads      []models.LeadRecord
	staff      []models.StaffRecord
	allSales   []models.SalesRecord
	weekLeads  []models.LeadRecord
	monthSales []models.SalesRecord

	salesErr    error
	staffErr    error
	allSalesErr error

	lastWin        DateWindow
	lastStaffID    *uuid.UUID
	lastWeekStart  time.Time
	lastMonthSpan  [2]time.Time
	approvedCalled int
}

func (f *fakeStore) SalesInWindow(ctx context.Context, win DateWindow, staffID *uuid.UUID) ([]models.SalesRecord, error) {
	f.lastWin = win
	f.lastStaffID = staffID
	return f.sales, f.salesErr
}

func (f *fakeStore) LeadsInWindow(ctx context.Context, win DateWindow, staffID *uuid.UUID) ([]models.LeadRecord, error) {
	return f.leads, nil
}

func (f *fakeStore) ApprovedStaff(ctx context.Context) ([]models.StaffRecord, error) {
	f.approvedCalled++
	return f.staff, f.staffErr
}

func (f *fakeStore) AllSales(ctx context.Context) ([]models.SalesRecord, error) {
	return f.allSales, f.allSalesErr
}

func (f *fakeStore) LeadsSince(ctx context.Context, start time.Time) ([]models.LeadRecord, error) {
	f.lastWeekStart = start
	return f.weekLeads, nil
}

func (f *fakeStore) SalesBetween(ctx context.Context, start, end time.Time) ([]models.SalesRecord, error) {
	f.lastMonthSpan = [2]time.Time{start, end}
	return f.monthSales, nil
}

func TestFetchJoinsAllSixReads(t *testing.T) {
	store := &fakeStore{
		sales:      []models.SalesRecord{{}},
		leads:      []models.LeadRecord{{}, {}},
		staff:      []models.StaffRecord{{}},
		allSales:   []models.SalesRecord{{}, {}, {}},
		weekLeads:  []models.LeadRecord{{}},
		monthSales: []models.SalesRecord{{}, {}},
	}
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	snap, err := NewFetcher(store).Fetch(context.Background(), DateWindow{}, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Sales) != 1 || len(snap.Leads) != 2 || len(snap.Staff) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if len(snap.AllSales) != 3 || len(snap.WeekLeads) != 1 || len(snap.MonthSales) != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestFetchComputesFixedWindows(t *testing.T) {
	store := &fakeStore{}
	// Wednesday; week starts the previous Sunday.
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	if _, err := NewFetcher(store).Fetch(context.Background(), DateWindow{}, nil, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.lastWeekStart.Equal(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected week start %v", store.lastWeekStart)
	}
	if !store.lastMonthSpan[0].Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected month start %v", store.lastMonthSpan[0])
	}
	if !store.lastMonthSpan[1].Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected month end %v", store.lastMonthSpan[1])
	}
}

func TestFetchPropagatesStaffFilter(t *testing.T) {
	store := &fakeStore{}
	staffID := uuid.New()
	now := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	if _, err := NewFetcher(store).Fetch(context.Background(), DateWindow{}, &staffID, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastStaffID == nil || *store.lastStaffID != staffID {
		t.Fatalf("expected staff filter %s, got %v", staffID, store.lastStaffID)
	}
}

func TestFetchFailsWhole(t *testing.T) {
	boom := errors.New("store offline")
	store := &fakeStore{allSalesErr: boom}
	now := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	snap, err := NewFetcher(store).Fetch(context.Background(), DateWindow{}, nil, now)
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if snap != nil {
		t.Fatal("expected no partial snapshot on failure")
	}
}
