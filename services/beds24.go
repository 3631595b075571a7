// Package services holds the Beds24 channel client and the sync jobs that
// pull properties and bookings into the local database. All date validation
// happens here, at the ingestion boundary, so the calendar engine only ever
// sees well-formed records.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"github.com/coinflows/frontdesk/calendar"
	"github.com/coinflows/frontdesk/models"
	"github.com/coinflows/frontdesk/storage"
)

const (
	defaultBaseURL = "https://beds24.com/api/v2"
	channelDate    = "2006-01-02"

	// raw channel responses are cached briefly so dashboard refresh bursts
	// don't hammer the channel API; the layout engine itself never caches
	cacheTTL = 60 * time.Second
)

var (
	bgContext = context.Background()
	validate  = validator.New()
	client    = &http.Client{Timeout: 15 * time.Second}
)

func baseURL() string {
	if v := os.Getenv("BEDS24_API_URL"); v != "" {
		return v
	}
	return defaultBaseURL
}

// ChannelBooking is the wire shape of one booking in the channel response.
type ChannelBooking struct {
	BookID       string  `json:"bookId" validate:"required"`
	PropID       string  `json:"propId" validate:"required"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	DateFrom     string  `json:"dateFrom" validate:"required,datetime=2006-01-02"`
	DateTo       string  `json:"dateTo" validate:"required,datetime=2006-01-02"`
	CheckInTime  string  `json:"checkInTime" validate:"omitempty,datetime=15:04"`
	CheckOutTime string  `json:"checkOutTime" validate:"omitempty,datetime=15:04"`
	Status       string  `json:"status"`
	ChannelName  string  `json:"channelName"`
	TotalAmount  float64 `json:"totalAmount"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
}

// ChannelProperty is the wire shape of one property in the channel response.
type ChannelProperty struct {
	PropID       string   `json:"propId" validate:"required"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	MaxGuests    int      `json:"maxGuests"`
	CheckInTime  string   `json:"checkInTime" validate:"omitempty,datetime=15:04"`
	CheckOutTime string   `json:"checkOutTime" validate:"omitempty,datetime=15:04"`
	Images       []string `json:"images"`
}

type channelEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// fetchChannel GETs path from the channel API with the account token,
// serving from the Redis cache when the entry is still fresh.
func fetchChannel(path, token string) ([]byte, error) {
	cacheKey := "beds24:" + token + ":" + path
	if storage.Redis != nil {
		if cached, err := storage.Redis.Get(bgContext, cacheKey).Bytes(); err == nil {
			return cached, nil
		}
	}

	req, err := http.NewRequest(http.MethodGet, baseURL()+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("token", token)

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("channel API returned %d for %s", res.StatusCode, path)
	}

	var envelope channelEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("channel API response not parseable: %w", err)
	}
	if envelope.Error != "" {
		return nil, fmt.Errorf("channel API error: %s", envelope.Error)
	}

	if storage.Redis != nil {
		storage.Redis.Set(bgContext, cacheKey, []byte(envelope.Data), cacheTTL)
	}
	return envelope.Data, nil
}

// SyncProperties pulls the property list and upserts it by channel key.
func SyncProperties(token string) (int, error) {
	data, err := fetchChannel("/properties", token)
	if err != nil {
		return 0, err
	}

	var props []ChannelProperty
	if err := json.Unmarshal(data, &props); err != nil {
		return 0, err
	}

	synced := 0
	for _, p := range props {
		if err := validate.Struct(p); err != nil {
			log.Warn().Str("propId", p.PropID).Err(err).Msg("skipping invalid channel property")
			continue
		}
		images, _ := json.Marshal(p.Images)
		row := models.Property{
			PropID:       p.PropID,
			Name:         p.Name,
			Address:      p.Address,
			City:         p.City,
			MaxGuests:    p.MaxGuests,
			CheckInTime:  p.CheckInTime,
			CheckOutTime: p.CheckOutTime,
			Images:       datatypes.JSON(images),
		}
		err := storage.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "prop_id"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			log.Error().Str("propId", p.PropID).Err(err).Msg("property upsert failed")
			continue
		}
		synced++
	}
	log.Info().Int("synced", synced).Int("received", len(props)).Msg("property sync finished")
	return synced, nil
}

// SyncBookings pulls bookings, validates them at the boundary, stamps missing
// check-in/out times from the unit's defaults and upserts by channel booking ID.
func SyncBookings(token string) (int, error) {
	data, err := fetchChannel("/bookings", token)
	if err != nil {
		return 0, err
	}

	var bookings []ChannelBooking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return 0, err
	}

	// unit defaults for bookings that arrive without clock times
	var props []models.Property
	storage.DB.Select("prop_id, check_in_time, check_out_time").Find(&props)
	unitTimes := make(map[string][2]string, len(props))
	for _, p := range props {
		unitTimes[p.PropID] = [2]string{p.CheckInTime, p.CheckOutTime}
	}

	synced := 0
	for _, cb := range bookings {
		if err := validate.Struct(cb); err != nil {
			log.Warn().Str("bookId", cb.BookID).Err(err).Msg("skipping invalid channel booking")
			continue
		}
		dateFrom, _ := time.Parse(channelDate, cb.DateFrom)
		dateTo, _ := time.Parse(channelDate, cb.DateTo)

		checkIn, checkOut := cb.CheckInTime, cb.CheckOutTime
		if times, ok := unitTimes[cb.PropID]; ok {
			if checkIn == "" {
				checkIn = times[0]
			}
			if checkOut == "" {
				checkOut = times[1]
			}
		}

		raw, _ := json.Marshal(cb)
		row := models.Booking{
			ChannelBookingID: cb.BookID,
			PropID:           cb.PropID,
			GuestFirstName:   cb.FirstName,
			GuestLastName:    cb.LastName,
			DateFrom:         dateFrom,
			DateTo:           dateTo,
			CheckInTime:      checkIn,
			CheckOutTime:     checkOut,
			Status:           calendar.ParseStatus(cb.Status).String(),
			ChannelName:      cb.ChannelName,
			TotalAmount:      cb.TotalAmount,
			Adults:           cb.Adults,
			Children:         cb.Children,
			GuestEmail:       cb.Email,
			GuestPhone:       cb.Phone,
			RawPayload:       datatypes.JSON(raw),
		}
		err := storage.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "channel_booking_id"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			log.Error().Str("bookId", cb.BookID).Err(err).Msg("booking upsert failed")
			continue
		}
		synced++
	}
	log.Info().Int("synced", synced).Int("received", len(bookings)).Msg("booking sync finished")
	return synced, nil
}
