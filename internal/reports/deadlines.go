package reports

import (
	"sort"
	"time"

	"github.com/zahratravel/agency-backend/pkg/db/models"
)

const (
	worklistLimit    = 5
	upcomingTripDays = 30
)

// OverdueFollowUps returns up to five window-filtered leads whose follow-up
// date has passed and whose status is not terminal, earliest date first.
// Leads without a follow-up date never match.
func OverdueFollowUps(leads []models.LeadRecord, now time.Time) []LeadItem {
	today := midnight(now)

	overdue := make([]models.LeadRecord, 0)
	for _, lead := range leads {
		if lead.DateFollowUp == nil {
			continue
		}
		if lead.FollowUpStatus.IsTerminal() {
			continue
		}
		if lead.DateFollowUp.Before(today) {
			overdue = append(overdue, lead)
		}
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DateFollowUp.Before(*overdue[j].DateFollowUp)
	})

	return leadItems(overdue, worklistLimit)
}

// UpcomingTrips returns up to five window-filtered sales departing between
// today and today+30 days inclusive, earliest trip first. Sales without a
// trip date never match.
func UpcomingTrips(sales []models.SalesRecord, now time.Time) []SaleItem {
	today := midnight(now)
	horizon := today.AddDate(0, 0, upcomingTripDays)

	upcoming := make([]models.SalesRecord, 0)
	for _, sale := range sales {
		if sale.TripDate == nil {
			continue
		}
		if sale.TripDate.Before(today) || sale.TripDate.After(horizon) {
			continue
		}
		upcoming = append(upcoming, sale)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].TripDate.Before(*upcoming[j].TripDate)
	})

	return saleItems(upcoming, worklistLimit)
}

func leadItems(leads []models.LeadRecord, limit int) []LeadItem {
	if len(leads) > limit {
		leads = leads[:limit]
	}
	items := make([]LeadItem, 0, len(leads))
	for _, lead := range leads {
		items = append(items, LeadItem{
			ID:             lead.ID,
			PackageName:    lead.PackageName,
			Phone:          lead.Phone,
			Source:         lead.Source,
			FollowUpStatus: lead.FollowUpStatus.String(),
			DateLead:       lead.DateLead,
			DateFollowUp:   lead.DateFollowUp,
		})
	}
	return items
}

func saleItems(sales []models.SalesRecord, limit int) []SaleItem {
	if len(sales) > limit {
		sales = sales[:limit]
	}
	items := make([]SaleItem, 0, len(sales))
	for _, sale := range sales {
		items = append(items, SaleItem{
			ID:                 sale.ID,
			PackageName:        sale.PackageName,
			RepresentativeName: sale.RepresentativeName,
			DateClosed:         sale.DateClosed,
			TripDate:           sale.TripDate,
			Total:              sale.Total,
			Paid:               sale.Paid,
			PaymentStatus:      sale.PaymentStatus.String(),
			PaxCount:           sale.PaxCount,
		})
	}
	return items
}
