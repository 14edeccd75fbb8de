package records

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zahratravel/agency-backend/internal/reports"
	"github.com/zahratravel/agency-backend/pkg/db/models"
	"github.com/zahratravel/agency-backend/pkg/enums"
)

// Store reads the sales, lead, and staff collections for the dashboard. It
// is read-only; record ownership stays with the sales and HR workflows.
type Store struct {
	db *gorm.DB
}

// NewStore constructs a record store bound to the provided GORM DB.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SalesInWindow returns sales whose close date falls inside the window,
// optionally scoped to one staff member. Open window sides apply no bound.
func (s *Store) SalesInWindow(ctx context.Context, win reports.DateWindow, staffID *uuid.UUID) ([]models.SalesRecord, error) {
	query := s.db.WithContext(ctx).Model(&models.SalesRecord{})
	if win.Start != nil {
		query = query.Where("date_closed >= ?", *win.Start)
	}
	if win.End != nil {
		query = query.Where("date_closed < ?", *win.End)
	}
	if staffID != nil {
		query = query.Where("staff_id = ?", *staffID)
	}

	var rows []models.SalesRecord
	if err := query.Order("date_closed DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LeadsInWindow returns leads whose lead date falls inside the window,
// optionally scoped to one staff member.
func (s *Store) LeadsInWindow(ctx context.Context, win reports.DateWindow, staffID *uuid.UUID) ([]models.LeadRecord, error) {
	query := s.db.WithContext(ctx).Model(&models.LeadRecord{})
	if win.Start != nil {
		query = query.Where("date_lead >= ?", *win.Start)
	}
	if win.End != nil {
		query = query.Where("date_lead < ?", *win.End)
	}
	if staffID != nil {
		query = query.Where("staff_id = ?", *staffID)
	}

	var rows []models.LeadRecord
	if err := query.Order("date_lead DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ApprovedStaff returns the approved roster.
func (s *Store) ApprovedStaff(ctx context.Context) ([]models.StaffRecord, error) {
	var rows []models.StaffRecord
	err := s.db.WithContext(ctx).
		Where("status = ?", enums.StaffStatusApproved).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AllSales returns every sales record; the trend series needs the full set
// regardless of the reporting window.
func (s *Store) AllSales(ctx context.Context) ([]models.SalesRecord, error) {
	var rows []models.SalesRecord
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LeadsSince returns leads dated at or after start.
func (s *Store) LeadsSince(ctx context.Context, start time.Time) ([]models.LeadRecord, error) {
	var rows []models.LeadRecord
	err := s.db.WithContext(ctx).
		Where("date_lead >= ?", start).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesBetween returns sales closed inside [start, end).
func (s *Store) SalesBetween(ctx context.Context, start, end time.Time) ([]models.SalesRecord, error) {
	var rows []models.SalesRecord
	err := s.db.WithContext(ctx).
		Where("date_closed >= ? AND date_closed < ?", start, end).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
