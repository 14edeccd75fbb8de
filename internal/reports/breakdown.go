package reports

import (
	"github.com/zahratravel/agency-backend/pkg/db/models"
	"github.com/zahratravel/agency-backend/pkg/enums"
)

// LeadsBySource counts window-filtered leads per source. Buckets appear in
// first-seen order; leads without a source land in the catch-all bucket.
func LeadsBySource(leads []models.LeadRecord) []SourceCount {
	counts := newOrderedMap[int]()
	for _, lead := range leads {
		source := lead.Source
		if source == "" {
			source = enums.DefaultLeadSource.String()
		}
		current, _ := counts.Get(source)
		counts.Set(source, current+1)
	}

	out := make([]SourceCount, 0, counts.Len())
	for _, key := range counts.Keys() {
		count, _ := counts.Get(key)
		out = append(out, SourceCount{Source: key, Count: count})
	}
	return out
}

// SalesByPaymentStatus counts window-filtered sales per payment status, in
// first-seen order, defaulting missing statuses to Pending.
func SalesByPaymentStatus(sales []models.SalesRecord) []StatusCount {
	counts := newOrderedMap[int]()
	for _, sale := range sales {
		status := sale.PaymentStatus.String()
		if status == "" {
			status = enums.DefaultPaymentStatus.String()
		}
		current, _ := counts.Get(status)
		counts.Set(status, current+1)
	}

	out := make([]StatusCount, 0, counts.Len())
	for _, key := range counts.Keys() {
		count, _ := counts.Get(key)
		out = append(out, StatusCount{Status: key, Count: count})
	}
	return out
}
