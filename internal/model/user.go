// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleFreelancer   Role = "FREELANCER"
	RoleOrganization Role = "ORGANIZATION"
	RoleAdmin        Role = "ADMIN"
	RoleMaintainer   Role = "MAINTAINER"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFreelancer, RoleOrganization, RoleAdmin, RoleMaintainer:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Role         Role      `gorm:"type:text;not null;index" json:"role"`
	Name         *string   `gorm:"type:text" json:"name"`
	Phone        *string   `gorm:"type:text" json:"phone"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Organization *OrganizationProfile `gorm:"foreignKey:UserID" json:"organization,omitempty"`
	Maintainer   *MaintainerProfile   `gorm:"foreignKey:UserID" json:"maintainer,omitempty"`
	Freelancer   *FreelancerProfile   `gorm:"foreignKey:UserID" json:"freelancer,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
