package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property is a rentable unit as known to the channel. PropID is the channel's
// key and the value bookings group by; OwnerID scopes the owner portal.
type Property struct {
	gorm.Model
	PropID       string         `json:"propId" gorm:"uniqueIndex;not null"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	MaxGuests    int            `json:"maxGuests"`
	CheckInTime  string         `json:"checkInTime" gorm:"type:varchar(10)"`  // unit default, stamped onto synced bookings lacking one
	CheckOutTime string         `json:"checkOutTime" gorm:"type:varchar(10)"`
	Images       datatypes.JSON `json:"images" gorm:"type:jsonb"`
	OwnerID      *uint          `json:"ownerId" gorm:"index"`
	Owner        *User          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
