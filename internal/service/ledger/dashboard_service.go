// Package ledger implements the occupancy ledger.
package ledger

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
)

// DashboardService computes aggregate metrics for the landing page.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardMetrics is the landing-page summary.
type DashboardMetrics struct {
	TotalPGs       int64   `json:"total_pgs"`
	TotalRooms     int64   `json:"total_rooms"`
	TotalTenants   int64   `json:"total_tenants"`
	ActiveBookings int64   `json:"active_bookings"`
	TotalIncome    float64 `json:"total_income"`
}

// GetMetrics reads all aggregates in a single transaction so the counts
// and the income sum reflect one consistent snapshot.
func (s *DashboardService) GetMetrics(ctx context.Context) (*DashboardMetrics, error) {
	metrics := &DashboardMetrics{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PG{}).Count(&metrics.TotalPGs).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Count(&metrics.TotalRooms).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Tenant{}).Count(&metrics.TotalTenants).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Booking{}).
			Where("status = ?", models.BookingStatusActive).
			Count(&metrics.ActiveBookings).Error; err != nil {
			return err
		}
		return tx.Model(&models.Payment{}).
			Select("COALESCE(SUM(amount), 0)").
			Row().Scan(&metrics.TotalIncome)
	})
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return metrics, nil
}
