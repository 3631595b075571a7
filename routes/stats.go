package routes

import (
	"os"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/coinflows/frontdesk/calendar"
	"github.com/coinflows/frontdesk/models"
	"github.com/coinflows/frontdesk/services"
	"github.com/coinflows/frontdesk/storage"
	"github.com/coinflows/frontdesk/utils"
)

// GET /api/admin/stats
func AdminStats(ctx iris.Context) {
	var totalProperties, totalBookings, confirmed, pending, cancelled int64
	storage.DB.Model(&models.Property{}).Count(&totalProperties)
	storage.DB.Model(&models.Booking{}).Count(&totalBookings)
	storage.DB.Model(&models.Booking{}).Where("status = ?", "confirmed").Count(&confirmed)
	storage.DB.Model(&models.Booking{}).Where("status = ?", "pending").Count(&pending)
	storage.DB.Model(&models.Booking{}).Where("status = ?", "cancelled").Count(&cancelled)

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	var new7, new30 int64
	storage.DB.Model(&models.Booking{}).Where("created_at >= ?", since7).Count(&new7)
	storage.DB.Model(&models.Booking{}).Where("created_at >= ?", since30).Count(&new30)

	var revenue float64
	storage.DB.Model(&models.Booking{}).
		Where("status = ?", "confirmed").
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue)

	// occupancy for the current month: confirmed nights clipped to the month
	// over property count × days in month
	now := time.Now()
	mc := calendar.BuildMonthContext(now.Year(), now.Month())
	monthStart := time.Date(mc.Year, mc.Month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var monthRows []models.Booking
	storage.DB.
		Where("status = ?", "confirmed").
		Where("date_from < ? AND date_to > ?", nextMonth, monthStart).
		Find(&monthRows)

	occupiedNights := 0
	for i := range monthRows {
		occupiedNights += calendar.NightsInMonth(monthRows[i].Calendar(), mc)
	}
	availableNights := totalProperties * int64(mc.DaysInMonth)
	occupancyRate := 0.0
	if availableNights > 0 {
		occupancyRate = float64(occupiedNights) / float64(availableNights) * 100
	}

	// revenue split by channel for the reports screen
	type channelRow struct {
		ChannelName string  `json:"channelName"`
		Bookings    int64   `json:"bookings"`
		Revenue     float64 `json:"revenue"`
	}
	var byChannel []channelRow
	storage.DB.Model(&models.Booking{}).
		Where("status = ?", "confirmed").
		Select("channel_name, COUNT(*) AS bookings, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("channel_name").Order("revenue DESC").
		Scan(&byChannel)

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"total_properties": totalProperties,
			"total_bookings":   totalBookings,
			"confirmed":        confirmed,
			"pending":          pending,
			"cancelled":        cancelled,
			"new_bookings_7d":  new7,
			"new_bookings_30d": new30,
			"revenue":          revenue,
			"occupied_nights":  occupiedNights,
			"available_nights": availableNights,
			"occupancy_rate":   occupancyRate,
			"by_channel":       byChannel,
		},
		"meta":  iris.Map{},
		"links": iris.Map{},
	})
}

// POST /api/admin/sync
func AdminSync(ctx iris.Context) {
	token := os.Getenv("BEDS24_API_TOKEN")
	if token == "" {
		utils.CreateError(iris.StatusServiceUnavailable, "Sync Unavailable", "BEDS24_API_TOKEN is not configured.", ctx)
		return
	}

	props, propsErr := services.SyncProperties(token)
	if propsErr != nil {
		utils.CreateError(iris.StatusBadGateway, "Sync Failed", propsErr.Error(), ctx)
		return
	}
	bookings, bookingsErr := services.SyncBookings(token)
	if bookingsErr != nil {
		utils.CreateError(iris.StatusBadGateway, "Sync Failed", bookingsErr.Error(), ctx)
		return
	}

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"properties": props,
			"bookings":   bookings,
		},
	})
}
