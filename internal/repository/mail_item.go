package repository

import (
	"time"

	"mailroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MailItemStats aggregates the counters shown on the dashboard. All values
// are derived from mail item rows, never stored.
type MailItemStats struct {
	Pending      int64 `json:"pending"`
	Notified     int64 `json:"notified"`
	Delivered    int64 `json:"delivered"`
	ArrivedToday int64 `json:"arrived_today"`
	MonthToDate  int64 `json:"month_to_date"`
}

// MailItemRepository handles database operations for mail items.
// Every query is scoped by organization id; cross-tenant access is forbidden.
type MailItemRepository struct {
	db *gorm.DB
}

// NewMailItemRepository creates a new mail item repository
func NewMailItemRepository(db *gorm.DB) *MailItemRepository {
	return &MailItemRepository{db: db}
}

// Create creates a new mail item
func (r *MailItemRepository) Create(item *models.MailItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a mail item by ID within an organization
func (r *MailItemRepository) GetByID(orgID, id uuid.UUID) (*models.MailItem, error) {
	var item models.MailItem
	err := r.db.Preload("Recipient").Preload("StorageLocation").
		First(&item, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByOrganizationID retrieves mail items of an organization with optional filters
func (r *MailItemRepository) GetByOrganizationID(orgID uuid.UUID, filter MailItemFilter, limit, offset int) ([]models.MailItem, int64, error) {
	var items []models.MailItem
	var total int64

	query := r.db.Model(&models.MailItem{}).Where("organization_id = ?", orgID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.RecipientID != nil {
		query = query.Where("recipient_id = ?", *filter.RecipientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Recipient").Preload("StorageLocation").
		Order("arrived_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update updates a mail item
func (r *MailItemRepository) Update(item *models.MailItem) error {
	return r.db.Save(item).Error
}

// Delete hard-deletes a mail item within an organization
func (r *MailItemRepository) Delete(orgID, id uuid.UUID) error {
	return r.db.Delete(&models.MailItem{}, "organization_id = ? AND id = ?", orgID, id).Error
}

// CountSince counts mail items that arrived at or after the given time.
// Used for monthly plan-limit enforcement.
func (r *MailItemRepository) CountSince(orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.MailItem{}).
		Where("organization_id = ? AND arrived_at >= ?", orgID, since).
		Count(&count).Error
	return count, err
}

// GetStats computes the dashboard counters for an organization
func (r *MailItemRepository) GetStats(orgID uuid.UUID, now time.Time) (*MailItemStats, error) {
	stats := &MailItemStats{}

	type statusCount struct {
		Status models.MailItemStatus
		Count  int64
	}
	var byStatus []statusCount
	err := r.db.Model(&models.MailItem{}).
		Select("status, count(*) as count").
		Where("organization_id = ?", orgID).
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}
	for _, sc := range byStatus {
		switch sc.Status {
		case models.MailItemStatusPending:
			stats.Pending = sc.Count
		case models.MailItemStatusNotified:
			stats.Notified = sc.Count
		case models.MailItemStatusDelivered:
			stats.Delivered = sc.Count
		}
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := r.db.Model(&models.MailItem{}).
		Where("organization_id = ? AND arrived_at >= ?", orgID, dayStart).
		Count(&stats.ArrivedToday).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := r.db.Model(&models.MailItem{}).
		Where("organization_id = ? AND arrived_at >= ?", orgID, monthStart).
		Count(&stats.MonthToDate).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// GetRecentActivity retrieves the most recently updated mail items
func (r *MailItemRepository) GetRecentActivity(orgID uuid.UUID, limit int) ([]models.MailItem, error) {
	var items []models.MailItem
	err := r.db.Preload("Recipient").
		Where("organization_id = ?", orgID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
