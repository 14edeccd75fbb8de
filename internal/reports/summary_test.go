package reports

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zahratravel/agency-backend/pkg/db/models"
	"github.com/zahratravel/agency-backend/pkg/enums"
)

func TestSummarizeEmptySnapshot(t *testing.T) {
	got := Summarize(&Snapshot{})
	if !got.TotalSales.Equal(decimal.Zero) {
		t.Fatalf("unexpected totalSales %s", got.TotalSales)
	}
	if got.TotalLeads != 0 || got.ConversionRate != 0 || got.TotalPax != 0 || got.NewLeadsThisWeek != 0 {
		t.Fatalf("expected zeroed summary, got %+v", got)
	}
	if !got.OutstandingPayment.Equal(decimal.Zero) {
		t.Fatalf("unexpected outstanding %s", got.OutstandingPayment)
	}
}

func TestSummarizeTotalsAndOutstanding(t *testing.T) {
	snap := &Snapshot{
		Sales: []models.SalesRecord{
			{Total: decimal.NewFromInt(1000), Paid: decimal.NewFromInt(600)},
			{Total: decimal.NewFromInt(500), Paid: decimal.NewFromInt(300)},
		},
	}
	got := Summarize(snap)
	if !got.TotalSales.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected totalSales 1500, got %s", got.TotalSales)
	}
	if !got.OutstandingPayment.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected outstanding 600, got %s", got.OutstandingPayment)
	}
}

func TestSummarizeOutstandingGoesNegativeOnOverpayment(t *testing.T) {
	snap := &Snapshot{
		Sales: []models.SalesRecord{
			{Total: decimal.NewFromInt(100), Paid: decimal.NewFromInt(150)},
		},
	}
	got := Summarize(snap)
	if !got.OutstandingPayment.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("expected outstanding -50, got %s", got.OutstandingPayment)
	}
}

func TestSummarizeConversionRate(t *testing.T) {
	snap := &Snapshot{
		Leads: []models.LeadRecord{
			{FollowUpStatus: enums.FollowUpStatusClosed},
			{FollowUpStatus: enums.FollowUpStatusPending},
			{FollowUpStatus: enums.FollowUpStatusClosed},
			{FollowUpStatus: enums.FollowUpStatusNotInterested},
		},
	}
	got := Summarize(snap)
	if got.TotalLeads != 4 {
		t.Fatalf("expected 4 leads, got %d", got.TotalLeads)
	}
	if got.ConversionRate != 50.0 {
		t.Fatalf("expected conversion 50.0, got %v", got.ConversionRate)
	}
}

func TestSummarizeConversionRateRoundsOneDecimal(t *testing.T) {
	// 1 of 3 closed is 33.333...; surfaced as 33.3.
	snap := &Snapshot{
		Leads: []models.LeadRecord{
			{FollowUpStatus: enums.FollowUpStatusClosed},
			{FollowUpStatus: enums.FollowUpStatusPending},
			{FollowUpStatus: enums.FollowUpStatusFollowUp},
		},
	}
	got := Summarize(snap)
	if got.ConversionRate != 33.3 {
		t.Fatalf("expected conversion 33.3, got %v", got.ConversionRate)
	}
}

func TestSummarizePaxAndWeekLeadsUseFixedWindows(t *testing.T) {
	snap := &Snapshot{
		MonthSales: []models.SalesRecord{
			{PaxCount: 4},
			{PaxCount: 2},
		},
		WeekLeads: []models.LeadRecord{{}, {}, {}},
	}
	got := Summarize(snap)
	if got.TotalPax != 6 {
		t.Fatalf("expected totalPax 6, got %d", got.TotalPax)
	}
	if got.NewLeadsThisWeek != 3 {
		t.Fatalf("expected 3 new leads this week, got %d", got.NewLeadsThisWeek)
	}
}
