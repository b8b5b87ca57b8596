package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "mailroom-backend/internal/errors"
	"mailroom-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardService computes derived read views over mail item state.
// Nothing here is stored; both views are recomputed on every request, which
// is what keeps them consistent with lifecycle transitions.
type DashboardService struct {
	mailItemRepo repository.MailItemRepositoryInterface
	orgRepo      repository.OrganizationRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(mailItemRepo repository.MailItemRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface) *DashboardService {
	return &DashboardService{
		mailItemRepo: mailItemRepo,
		orgRepo:      orgRepo,
	}
}

// DashboardStatsResponse represents the dashboard counters
type DashboardStatsResponse struct {
	Pending            int64 `json:"pending"`
	Notified           int64 `json:"notified"`
	Delivered          int64 `json:"delivered"`
	ArrivedToday       int64 `json:"arrived_today"`
	MonthToDate        int64 `json:"month_to_date"`
	MaxPackagesMonthly int   `json:"max_packages_per_month"`
}

// ActivityEntry is one row of the recent-activity feed
type ActivityEntry struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	RecipientName string     `json:"recipient_name,omitempty"`
	ArrivedAt     time.Time  `json:"arrived_at"`
	NotifiedAt    *time.Time `json:"notified_at,omitempty"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// GetStats retrieves the dashboard counters for an organization
func (s *DashboardService) GetStats(orgID uuid.UUID) (*DashboardStatsResponse, error) {
	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	stats, err := s.mailItemRepo.GetStats(orgID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return &DashboardStatsResponse{
		Pending:            stats.Pending,
		Notified:           stats.Notified,
		Delivered:          stats.Delivered,
		ArrivedToday:       stats.ArrivedToday,
		MonthToDate:        stats.MonthToDate,
		MaxPackagesMonthly: org.MaxPackagesMonthly,
	}, nil
}

// GetRecentActivity retrieves the most recently touched mail items
func (s *DashboardService) GetRecentActivity(orgID uuid.UUID, limit int) ([]ActivityEntry, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	items, err := s.mailItemRepo.GetRecentActivity(orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}

	entries := make([]ActivityEntry, len(items))
	for i, item := range items {
		entry := ActivityEntry{
			ID:          item.ID,
			Type:        string(item.Type),
			Status:      string(item.Status),
			ArrivedAt:   item.ArrivedAt,
			NotifiedAt:  item.NotifiedAt,
			DeliveredAt: item.DeliveredAt,
			UpdatedAt:   item.UpdatedAt,
		}
		if item.Recipient != nil {
			entry.RecipientName = item.Recipient.FirstName + " " + item.Recipient.LastName
		}
		entries[i] = entry
	}
	return entries, nil
}
