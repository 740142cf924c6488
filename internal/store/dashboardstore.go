package store

import (
	"context"

	"github.com/campusdesk/registry-api/internal/models"
)

// DashboardStats runs three independent count queries. There is no
// transaction around them; the numbers are a point-in-time snapshot and a
// failure in any one query fails the whole aggregate.
func (s *Store) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var stats models.DashboardStats
	db := s.DB.WithContext(ctx)

	if err := db.Model(&models.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return nil, translate(err)
	}
	if err := db.Model(&models.Student{}).Where("status = ?", models.DefaultStatus).Count(&stats.ActiveStudents).Error; err != nil {
		return nil, translate(err)
	}
	if err := db.Model(&models.Course{}).Count(&stats.TotalCourses).Error; err != nil {
		return nil, translate(err)
	}
	return &stats, nil
}
