package calendar

import (
	"encoding/json"
	"strings"
)

// Status is the booking state as far as the calendar cares: it only drives
// the bar color, never membership.
type Status int

const (
	StatusOther Status = iota
	StatusConfirmed
	StatusPending
	StatusCancelled
	StatusMaintenance
)

// ParseStatus maps the free-form channel status string onto the closed set.
// Unknown values land on StatusOther rather than failing.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed":
		return StatusConfirmed
	case "pending", "request", "new":
		return StatusPending
	case "cancelled", "canceled":
		return StatusCancelled
	case "maintenance", "blocked":
		return StatusMaintenance
	default:
		return StatusOther
	}
}

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusPending:
		return "pending"
	case StatusCancelled:
		return "cancelled"
	case StatusMaintenance:
		return "maintenance"
	default:
		return "other"
	}
}

// Color returns the badge color the dashboard uses for this status.
func (s Status) Color() string {
	switch s {
	case StatusConfirmed:
		return "green"
	case StatusPending:
		return "yellow"
	case StatusCancelled:
		return "red"
	case StatusMaintenance:
		return "gray"
	default:
		return "blue"
	}
}

// MarshalJSON renders the status as its lowercase name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts any JSON string and parses it with the fallback arm;
// non-string tokens are a type error, not StatusOther.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}
