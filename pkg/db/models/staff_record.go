package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/zahratravel/agency-backend/pkg/enums"
)

// StaffRecord is a roster member. Only approved members participate in
// leaderboard joins.
type StaffRecord struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string            `gorm:"column:name;not null" json:"name"`
	Role      enums.UserRole    `gorm:"column:role;type:text;not null;default:'staff'" json:"role"`
	Status    enums.StaffStatus `gorm:"column:status;type:text;not null;default:'pending'" json:"status"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (StaffRecord) TableName() string {
	return "staff_records"
}
