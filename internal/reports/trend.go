package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zahratravel/agency-backend/pkg/db/models"
)

const trendMonths = 12

const monthKeyLayout = "2006-01"

// BuildTrend buckets the unfiltered sales set and the window-filtered lead
// set into the 12 calendar months ending with the current month. The series
// always has exactly 12 entries, oldest first; records dated outside the span
// are dropped silently.
func BuildTrend(allSales []models.SalesRecord, leads []models.LeadRecord, now time.Time) []TrendPoint {
	buckets := newOrderedMap[*TrendPoint]()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := trendMonths - 1; i >= 0; i-- {
		month := firstOfMonth.AddDate(0, -i, 0)
		key := month.Format(monthKeyLayout)
		buckets.Set(key, &TrendPoint{
			Month: key,
			Label: month.Format("Jan"),
			Sales: decimal.Zero,
		})
	}

	for _, sale := range allSales {
		if sale.DateClosed == nil {
			continue
		}
		if point, ok := buckets.Get(sale.DateClosed.Format(monthKeyLayout)); ok {
			point.Sales = point.Sales.Add(sale.Total)
		}
	}

	for _, lead := range leads {
		if lead.DateLead == nil {
			continue
		}
		if point, ok := buckets.Get(lead.DateLead.Format(monthKeyLayout)); ok {
			point.Leads++
		}
	}

	series := make([]TrendPoint, 0, trendMonths)
	for _, key := range buckets.Keys() {
		point, _ := buckets.Get(key)
		series = append(series, *point)
	}
	return series
}
