package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RegistrationDraftModel mirrors the 'registration_drafts' table. At most
// one live draft per owner and wizard kind; the payload is schemaless JSONB
// because earlier steps may be incomplete until submission.
type RegistrationDraftModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_drafts_owner_kind,priority:1"`
	Kind           string         `gorm:"type:varchar(32);not null;uniqueIndex:idx_drafts_owner_kind,priority:2"`
	CurrentStep    int            `gorm:"not null;default:1"`
	CompletedSteps datatypes.JSON `gorm:"type:jsonb"`
	Payload        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationDraftModel) TableName() string {
	return "registration_drafts"
}
