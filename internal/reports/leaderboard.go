package reports

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zahratravel/agency-backend/pkg/db/models"
)

const topStaffLimit = 5

// BuildLeaderboard seeds a row per approved roster member, accumulates the
// window-filtered sales and leads into matching rows, drops rows with no
// activity, and ranks by amount descending. Records whose staff id is null or
// not on the roster contribute to nothing here; they still count toward the
// global summary.
func BuildLeaderboard(staff []models.StaffRecord, sales []models.SalesRecord, leads []models.LeadRecord) []StaffPerformanceRow {
	rows := make([]*StaffPerformanceRow, 0, len(staff))
	byID := make(map[uuid.UUID]*StaffPerformanceRow, len(staff))
	for _, member := range staff {
		row := &StaffPerformanceRow{
			StaffID:     member.ID,
			Name:        member.Name,
			AmountTotal: decimal.Zero,
		}
		rows = append(rows, row)
		byID[member.ID] = row
	}

	for _, sale := range sales {
		if sale.StaffID == nil {
			continue
		}
		if row, ok := byID[*sale.StaffID]; ok {
			row.SalesCount++
			row.AmountTotal = row.AmountTotal.Add(sale.Total)
		}
	}

	for _, lead := range leads {
		if lead.StaffID == nil {
			continue
		}
		if row, ok := byID[*lead.StaffID]; ok {
			row.LeadCount++
		}
	}

	ranked := make([]StaffPerformanceRow, 0, len(rows))
	for _, row := range rows {
		if row.SalesCount == 0 && row.LeadCount == 0 {
			continue
		}
		ranked = append(ranked, *row)
	}

	// Stable keeps roster order between equal amounts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AmountTotal.GreaterThan(ranked[j].AmountTotal)
	})
	return ranked
}

// TopStaff returns the first five ranked rows.
func TopStaff(ranked []StaffPerformanceRow) []StaffPerformanceRow {
	if len(ranked) > topStaffLimit {
		return ranked[:topStaffLimit]
	}
	return ranked
}
