package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	// Hashed with bcrypt; never serialized outward.
	Password string `gorm:"not null" json:"-"`

	IsAccountNonExpired     bool `gorm:"not null;default:true" json:"isAccountNonExpired"`
	IsAccountNonLocked      bool `gorm:"not null;default:true" json:"isAccountNonLocked"`
	IsCredentialsNonExpired bool `gorm:"not null;default:true" json:"isCredentialsNonExpired"`
	IsEnabled               bool `gorm:"not null;default:true" json:"isEnabled"`

	Authorities []Role    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"authorities"`
	UserMeta    *UserMeta `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"userMeta,omitempty"`

	Timestamp
}

// HasRole reports whether one of the user's authorities carries the given role.
func (u *User) HasRole(role string) bool {
	for _, authority := range u.Authorities {
		if authority.Role == role {
			return true
		}
	}
	return false
}

// RoleNames returns the user's authorities as plain role tags.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Authorities))
	for _, authority := range u.Authorities {
		names = append(names, authority.Role)
	}
	return names
}

type Role struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid" json:"-"`
	Role   string    `gorm:"not null" json:"role"`
}

type UserMeta struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid" json:"-"`
	Email  string    `gorm:"uniqueIndex;not null" json:"email"`
	Name   string    `gorm:"not null" json:"name"`
}
