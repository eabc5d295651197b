// internal/model/reference.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reference is lookup data a Training points at. TrainingForeignKey names
// the trainings column holding the reference.
type Reference interface {
	TableName() string
	TrainingForeignKey() string
}

// ReferenceCounts are derived at read time from the trainings table and are
// never stored.
type ReferenceCounts struct {
	TrainingsCount       int64 `gorm:"->;-:migration" json:"trainingsCount"`
	ActiveTrainingsCount int64 `gorm:"->;-:migration" json:"activeTrainingsCount"`
}

type TrainingCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	ReferenceCounts
}

func (TrainingCategory) TableName() string          { return "training_categories" }
func (TrainingCategory) TrainingForeignKey() string { return "category_id" }

func (c *TrainingCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type TrainingLocation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	State     string    `gorm:"type:text;not null" json:"state"`
	District  string    `gorm:"type:text;not null" json:"district"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReferenceCounts
}

func (TrainingLocation) TableName() string          { return "training_locations" }
func (TrainingLocation) TrainingForeignKey() string { return "location_id" }

func (l *TrainingLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type Stack struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	ReferenceCounts
}

func (Stack) TableName() string          { return "stacks" }
func (Stack) TrainingForeignKey() string { return "stack_id" }

func (s *Stack) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
