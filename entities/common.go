package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at,omitempty"`
}
