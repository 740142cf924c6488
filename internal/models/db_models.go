package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is one enrollment record. Course is a plain string, not a foreign
// key into the courses table, and Status is uncontrolled text.
type Student struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	Name           string         `json:"name"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	Course         string         `json:"course"`
	EnrollmentDate Date           `json:"enrollmentDate"`
	Status         string         `gorm:"default:active" json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = DefaultStatus
	}
	return nil
}

type Course struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Status      string    `gorm:"default:active" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = DefaultStatus
	}
	return nil
}
