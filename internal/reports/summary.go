package reports

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/zahratravel/agency-backend/pkg/enums"
)

// Summarize reduces the snapshot into the headline KPIs. Empty sets produce
// zeroed output; a window with no leads yields a conversion rate of 0 rather
// than a division error.
func Summarize(snap *Snapshot) Summary {
	totalSales := decimal.Zero
	totalPaid := decimal.Zero
	for _, sale := range snap.Sales {
		totalSales = totalSales.Add(sale.Total)
		totalPaid = totalPaid.Add(sale.Paid)
	}

	closedLeads := 0
	for _, lead := range snap.Leads {
		if lead.FollowUpStatus == enums.FollowUpStatusClosed {
			closedLeads++
		}
	}

	totalLeads := len(snap.Leads)
	conversionRate := 0.0
	if totalLeads > 0 {
		conversionRate = roundOneDecimal(float64(closedLeads) / float64(totalLeads) * 100)
	}

	totalPax := 0
	for _, sale := range snap.MonthSales {
		totalPax += sale.PaxCount
	}

	return Summary{
		TotalSales:     totalSales,
		TotalLeads:     totalLeads,
		ConversionRate: conversionRate,
		// May go negative on overpayment; that is intentional.
		OutstandingPayment: totalSales.Sub(totalPaid),
		TotalPax:           totalPax,
		NewLeadsThisWeek:   len(snap.WeekLeads),
	}
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
