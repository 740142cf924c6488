package store

import (
	"context"
	"time"

	"github.com/campusdesk/registry-api/internal/models"
)

/* ------------------ Course CRUD ------------------ */

// ListCourses returns all courses in ascending name order.
func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	res := []models.Course{}
	if err := s.DB.WithContext(ctx).Order("name asc").Find(&res).Error; err != nil {
		return nil, translate(err)
	}
	return res, nil
}

func (s *Store) CreateCourse(ctx context.Context, c *models.Course) error {
	if err := s.ready(); err != nil {
		return err
	}
	return translate(s.DB.WithContext(ctx).Create(c).Error)
}

func (s *Store) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var c models.Course
	if err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// UpdateCourseFields applies a partial update and returns the merged record.
func (s *Store) UpdateCourseFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Course, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var c models.Course
	if err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	fields["updated_at"] = time.Now()
	if err := s.DB.WithContext(ctx).Model(&models.Course{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) DeleteCourse(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return translate(s.DB.WithContext(ctx).Delete(&models.Course{}, "id = ?", id).Error)
}
