package store

import (
	"context"
	"time"

	"github.com/campusdesk/registry-api/internal/models"
)

/* ------------------ Student CRUD ------------------ */

// ListStudents returns all students, newest first.
func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	res := []models.Student{}
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&res).Error; err != nil {
		return nil, translate(err)
	}
	return res, nil
}

func (s *Store) CreateStudent(ctx context.Context, st *models.Student) error {
	if err := s.ready(); err != nil {
		return err
	}
	return translate(s.DB.WithContext(ctx).Create(st).Error)
}

func (s *Store) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var st models.Student
	if err := s.DB.WithContext(ctx).First(&st, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

// UpdateStudentFields applies a partial update and returns the merged
// record. Fields not present in the map keep their current value.
func (s *Store) UpdateStudentFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Student, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var st models.Student
	if err := s.DB.WithContext(ctx).First(&st, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	fields["updated_at"] = time.Now()
	if err := s.DB.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.DB.WithContext(ctx).First(&st, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

// DeleteStudent removes the record if it exists. Deleting a missing id is
// not an error; the HTTP contract reports success either way.
func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return translate(s.DB.WithContext(ctx).Delete(&models.Student{}, "id = ?", id).Error)
}
