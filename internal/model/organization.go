// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerifiedStatus string

const (
	VerifiedPending  VerifiedStatus = "PENDING"
	VerifiedVerified VerifiedStatus = "VERIFIED"
	VerifiedRejected VerifiedStatus = "REJECTED"
)

func (s VerifiedStatus) Valid() bool {
	switch s {
	case VerifiedPending, VerifiedVerified, VerifiedRejected:
		return true
	}
	return false
}

type ActiveStatus string

const (
	StatusActive   ActiveStatus = "ACTIVE"
	StatusInactive ActiveStatus = "INACTIVE"
)

func (s ActiveStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type OrganizationProfile struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	OrganizationName string         `gorm:"type:text;not null" json:"organizationName"`
	Website          *string        `gorm:"type:text" json:"website"`
	ContactMail      string         `gorm:"type:text;not null" json:"contactMail"`
	Phone            *string        `gorm:"type:text" json:"phone"`
	CompanyLocation  string         `gorm:"type:text;not null" json:"companyLocation"`
	Logo             *string        `gorm:"type:text" json:"logo"`
	VerifiedStatus   VerifiedStatus `gorm:"type:text;not null;default:'PENDING';index" json:"verifiedStatus"`
	ActiveStatus     ActiveStatus   `gorm:"type:text;not null;default:'ACTIVE';index" json:"activeStatus"`
	Ratings          float64        `gorm:"not null;default:0" json:"ratings"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`

	TrainingsCount int64 `gorm:"->;-:migration" json:"trainingsCount"`
}

// BeforeCreate assigns the id and the initial PENDING / ACTIVE statuses.
func (o *OrganizationProfile) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.VerifiedStatus == "" {
		o.VerifiedStatus = VerifiedPending
	}
	if o.ActiveStatus == "" {
		o.ActiveStatus = StatusActive
	}
	return nil
}

type MaintainerProfile struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Status    ActiveStatus `gorm:"type:text;not null;default:'ACTIVE';index" json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
}

func (m *MaintainerProfile) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusActive
	}
	return nil
}

type FreelancerProfile struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Bio             *string        `gorm:"type:text" json:"bio"`
	Skills          Skills         `gorm:"type:text" json:"skills"`
	ExperienceYears int            `gorm:"not null;default:0" json:"experienceYears"`
	VerifiedStatus  VerifiedStatus `gorm:"type:text;not null;default:'PENDING';index" json:"verifiedStatus"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
}

func (f *FreelancerProfile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.VerifiedStatus == "" {
		f.VerifiedStatus = VerifiedPending
	}
	return nil
}
