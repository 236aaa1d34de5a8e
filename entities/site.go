package entities

import (
	"github.com/google/uuid"
)

type Site struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Code     string    `gorm:"uniqueIndex" json:"code"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
