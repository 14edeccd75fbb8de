package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zahratravel/agency-backend/pkg/db/models"
)

// Snapshot holds the six record sets a single dashboard request reads. It is
// assembled once per request and never mutated afterward.
type Snapshot struct {
	// Sales and Leads are filtered by the caller's reporting window and
	// optional staff filter.
	Sales []models.SalesRecord
	Leads []models.LeadRecord
	// Staff is the approved roster, unfiltered.
	Staff []models.StaffRecord
	// AllSales feeds the sales side of the 12-month trend.
	AllSales []models.SalesRecord
	// WeekLeads are leads dated at or after the start of the current week.
	WeekLeads []models.LeadRecord
	// MonthSales are sales closed inside the current calendar month.
	MonthSales []models.SalesRecord
}

// Summary carries the headline KPIs for the reporting window.
type Summary struct {
	TotalSales         decimal.Decimal `json:"totalSales"`
	TotalLeads         int             `json:"totalLeads"`
	ConversionRate     float64         `json:"conversionRate"`
	OutstandingPayment decimal.Decimal `json:"outstandingPayment"`
	TotalPax           int             `json:"totalPax"`
	NewLeadsThisWeek   int             `json:"newLeadsThisWeek"`
}

// TrendPoint is one calendar month in the trailing 12-month series.
type TrendPoint struct {
	Month string          `json:"month"`
	Label string          `json:"label"`
	Sales decimal.Decimal `json:"sales"`
	Leads int             `json:"leads"`
}

// SourceCount is a lead-source bucket.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// StatusCount is a payment-status bucket.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StaffPerformanceRow is a derived leaderboard row; it is never persisted.
type StaffPerformanceRow struct {
	StaffID     uuid.UUID       `json:"staffId"`
	Name        string          `json:"name"`
	SalesCount  int             `json:"salesCount"`
	LeadCount   int             `json:"leadCount"`
	AmountTotal decimal.Decimal `json:"amountTotal"`
}

// SaleItem is the worklist projection of a sales record.
type SaleItem struct {
	ID                 uuid.UUID       `json:"id"`
	PackageName        string          `json:"packageName"`
	RepresentativeName string          `json:"representativeName"`
	DateClosed         *time.Time      `json:"dateClosed,omitempty"`
	TripDate           *time.Time      `json:"tripDate,omitempty"`
	Total              decimal.Decimal `json:"total"`
	Paid               decimal.Decimal `json:"paid"`
	PaymentStatus      string          `json:"paymentStatus"`
	PaxCount           int             `json:"paxCount"`
}

// LeadItem is the worklist projection of a lead record.
type LeadItem struct {
	ID             uuid.UUID  `json:"id"`
	PackageName    string     `json:"packageName"`
	Phone          string     `json:"phone"`
	Source         string     `json:"source"`
	FollowUpStatus string     `json:"followUpStatus"`
	DateLead       *time.Time `json:"dateLead,omitempty"`
	DateFollowUp   *time.Time `json:"dateFollowUp,omitempty"`
}

// StaffMember is the roster projection returned alongside the report.
type StaffMember struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// Charts groups the chartable series of the report.
type Charts struct {
	SalesTrend       []TrendPoint          `json:"salesTrend"`
	LeadsBySource    []SourceCount         `json:"leadsBySource"`
	PaymentBreakdown []StatusCount         `json:"paymentBreakdown"`
	StaffStats       []StaffPerformanceRow `json:"staffStats"`
}

// Tables groups the bounded worklists of the report.
type Tables struct {
	TopStaff         []StaffPerformanceRow `json:"topStaff"`
	RecentSales      []SaleItem            `json:"recentSales"`
	OverdueFollowUps []LeadItem            `json:"overdueFollowUps"`
	UpcomingTrips    []SaleItem            `json:"upcomingTrips"`
}

// Report is the assembled dashboard response, recomputed fresh per request.
type Report struct {
	Summary Summary       `json:"summary"`
	Charts  Charts        `json:"charts"`
	Tables  Tables        `json:"tables"`
	Staff   []StaffMember `json:"staff"`
}
