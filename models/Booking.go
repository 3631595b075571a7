package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/coinflows/frontdesk/calendar"
)

// Booking mirrors one reservation pulled from the booking channel. The row is
// upserted on every sync keyed by ChannelBookingID; DateFrom/DateTo are the
// check-in and check-out days already validated at ingestion.
type Booking struct {
	gorm.Model
	ChannelBookingID string         `json:"bookId" gorm:"uniqueIndex;not null"`
	PropID           string         `json:"propId" gorm:"index;not null"`
	GuestFirstName   string         `json:"firstName"`
	GuestLastName    string         `json:"lastName"`
	DateFrom         time.Time      `json:"dateFrom" gorm:"type:date;index"`
	DateTo           time.Time      `json:"dateTo" gorm:"type:date;index"`
	CheckInTime      string         `json:"checkInTime" gorm:"type:varchar(10)"`
	CheckOutTime     string         `json:"checkOutTime" gorm:"type:varchar(10)"`
	Status           string         `json:"status" gorm:"type:varchar(20);index"` // confirmed, pending, cancelled, maintenance
	ChannelName      string         `json:"channelName"`
	TotalAmount      float64        `json:"totalAmount"`
	Adults           int            `json:"adults"`
	Children         int            `json:"children"`
	GuestEmail       string         `json:"guestEmail"`
	GuestPhone       string         `json:"guestPhone"`
	RawPayload       datatypes.JSON `json:"-" gorm:"type:jsonb"` // original channel document
}

// Calendar converts the stored row into the layout engine's record.
func (b *Booking) Calendar() calendar.Booking {
	return calendar.Booking{
		ID:             b.ChannelBookingID,
		PropertyID:     b.PropID,
		GuestFirstName: b.GuestFirstName,
		GuestLastName:  b.GuestLastName,
		DateFrom:       b.DateFrom,
		DateTo:         b.DateTo,
		CheckInTime:    b.CheckInTime,
		CheckOutTime:   b.CheckOutTime,
		Status:         calendar.ParseStatus(b.Status),
		ChannelName:    b.ChannelName,
		TotalAmount:    b.TotalAmount,
		Adults:         b.Adults,
		Children:       b.Children,
	}
}

// CalendarBookings maps a result set into engine records, preserving order.
func CalendarBookings(rows []Booking) []calendar.Booking {
	out := make([]calendar.Booking, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Calendar())
	}
	return out
}
