package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActionLog records a mutation performed through the API.
type ActionLog struct {
	ID         uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	ActorID    *uuid.UUID                  `json:"actorId" gorm:"type:uuid;index"`
	ActorRole  Role                        `json:"actorRole" gorm:"type:text"`
	EntityType string                      `json:"entityType" gorm:"type:text;not null;index"`
	Action     string                      `json:"action" gorm:"type:text;not null;index"`
	EntityIDs  datatypes.JSONSlice[string] `json:"entityIds" gorm:"type:json"`
	Details    datatypes.JSONMap           `json:"details" gorm:"type:json"`
	RequestID  string                      `json:"requestId" gorm:"type:text"`
	ClientIP   string                      `json:"clientIp" gorm:"type:text"`
	CreatedAt  time.Time                   `json:"createdAt" gorm:"index"`
}

// TableName specifies the table name for ActionLog
func (ActionLog) TableName() string {
	return "action_logs"
}

func (l *ActionLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Entity types recorded in the action log
const (
	EntityUser         = "user"
	EntityOrganization = "organization"
	EntityMaintainer   = "maintainer"
	EntityFreelancer   = "freelancer"
	EntityTraining     = "training"
	EntityCategory     = "training_category"
	EntityLocation     = "training_location"
	EntityStack        = "stack"
	EntityApplication  = "training_application"
	EntityFeedback     = "training_feedback"
)
