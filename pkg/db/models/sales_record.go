package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zahratravel/agency-backend/pkg/enums"
)

// SalesRecord is a closed (or closing) package sale. Owned by the sales
// workflow; the reporting subsystem reads it and never writes.
type SalesRecord struct {
	ID                 uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StaffID            *uuid.UUID          `gorm:"column:staff_id;type:uuid" json:"staffId,omitempty"`
	DateClosed         *time.Time          `gorm:"column:date_closed" json:"dateClosed,omitempty"`
	TripDate           *time.Time          `gorm:"column:trip_date" json:"tripDate,omitempty"`
	Total              decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null;default:0" json:"total"`
	Paid               decimal.Decimal     `gorm:"column:paid;type:numeric(12,2);not null;default:0" json:"paid"`
	PaxCount           int                 `gorm:"column:pax_count;not null;default:0" json:"paxCount"`
	PaymentStatus      enums.PaymentStatus `gorm:"column:payment_status;type:text" json:"paymentStatus"`
	PackageName        string              `gorm:"column:package_name" json:"packageName"`
	RepresentativeName string              `gorm:"column:representative_name" json:"representativeName"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SalesRecord) TableName() string {
	return "sales_records"
}
