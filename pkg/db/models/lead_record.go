package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/zahratravel/agency-backend/pkg/enums"
)

// LeadRecord is an inbound enquiry being worked toward a sale.
type LeadRecord struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StaffID        *uuid.UUID           `gorm:"column:staff_id;type:uuid" json:"staffId,omitempty"`
	DateLead       *time.Time           `gorm:"column:date_lead" json:"dateLead,omitempty"`
	Source         string               `gorm:"column:source" json:"source"`
	FollowUpStatus enums.FollowUpStatus `gorm:"column:follow_up_status;type:text" json:"followUpStatus"`
	DateFollowUp   *time.Time           `gorm:"column:date_follow_up" json:"dateFollowUp,omitempty"`
	PackageName    string               `gorm:"column:package_name" json:"packageName"`
	Phone          string               `gorm:"column:phone" json:"phone"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (LeadRecord) TableName() string {
	return "lead_records"
}
