package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Generic holds the columns shared by all persisted models. IDs are UUIDs so
// they can be handed to clients as opaque identifiers.
type Generic struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Generic) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	return nil
}
