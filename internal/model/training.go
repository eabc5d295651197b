// internal/model/training.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainingType string

const (
	TrainingCorporate  TrainingType = "CORPORATE"
	TrainingUniversity TrainingType = "UNIVERSITY"
)

func (t TrainingType) Valid() bool {
	return t == TrainingCorporate || t == TrainingUniversity
}

type TrainingMode string

const (
	ModeOnline  TrainingMode = "ONLINE"
	ModeOffline TrainingMode = "OFFLINE"
)

func (m TrainingMode) Valid() bool {
	return m == ModeOnline || m == ModeOffline
}

// Training is a posting by an organization. IsPublished controls visibility
// to freelancers and IsActive controls whether new applications are
// accepted; the two flags are independent.
type Training struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string       `gorm:"type:text;not null" json:"title"`
	Description    string       `gorm:"type:text;not null" json:"description"`
	Skills         Skills       `gorm:"type:text" json:"skills"`
	CategoryID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"categoryId"`
	LocationID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"locationId"`
	StackID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"stackId"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"organizationId"`
	Type           TrainingType `gorm:"type:text;not null" json:"type"`
	Mode           TrainingMode `gorm:"type:text;not null" json:"mode"`
	IsPublished    bool         `gorm:"not null" json:"isPublished"`
	IsActive       bool         `gorm:"not null" json:"isActive"`
	StartDate      time.Time    `gorm:"not null" json:"startDate"`
	EndDate        time.Time    `gorm:"not null" json:"endDate"`
	PaymentAmount  *float64     `json:"paymentAmount"`
	PaymentTerm    *string      `gorm:"type:text" json:"paymentTerm"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`

	Category     *TrainingCategory    `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	Location     *TrainingLocation    `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT" json:"location,omitempty"`
	Stack        *Stack               `gorm:"foreignKey:StackID;constraint:OnDelete:RESTRICT" json:"stack,omitempty"`
	Organization *OrganizationProfile `gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT" json:"organization,omitempty"`
}

func (t *Training) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// AcceptsApplications reports whether a freelancer may apply right now.
func (t *Training) AcceptsApplications() bool {
	return t.IsPublished && t.IsActive
}

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

type TrainingApplication struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	TrainingID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_application_training_freelancer" json:"trainingId"`
	FreelancerID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_application_training_freelancer" json:"freelancerId"`
	CoverLetter  *string           `gorm:"type:text" json:"coverLetter"`
	Status       ApplicationStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`

	Training   *Training          `gorm:"foreignKey:TrainingID;constraint:OnDelete:RESTRICT" json:"training,omitempty"`
	Freelancer *FreelancerProfile `gorm:"foreignKey:FreelancerID;constraint:OnDelete:RESTRICT" json:"freelancer,omitempty"`
}

func (a *TrainingApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	return nil
}

type TrainingFeedback struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organizationId"`
	TrainingID     uuid.UUID `gorm:"type:uuid;not null;index" json:"trainingId"`
	Rating         int       `gorm:"not null" json:"rating"`
	Comment        *string   `gorm:"type:text" json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Organization *OrganizationProfile `gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT" json:"-"`
	Training     *Training            `gorm:"foreignKey:TrainingID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (TrainingFeedback) TableName() string {
	return "training_feedback"
}

func (f *TrainingFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
