package routes

import (
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/coinflows/frontdesk/calendar"
	"github.com/coinflows/frontdesk/models"
	"github.com/coinflows/frontdesk/storage"
	"github.com/coinflows/frontdesk/utils"
)

// viewedMonth reads and validates the year/month query params, defaulting to
// the current month. Validation happens here so the engine's preconditions
// always hold.
func viewedMonth(ctx iris.Context) (int, time.Month, bool) {
	now := time.Now()
	year := ctx.URLParamIntDefault("year", now.Year())
	month := ctx.URLParamIntDefault("month", int(now.Month()))

	if month < 1 || month > 12 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "month must be between 1 and 12", ctx)
		return 0, 0, false
	}
	if year < 1 || year > 9999 {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "year out of range", ctx)
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// monthBookings loads the caller-visible bookings touching the viewed month
// and converts them to engine records in a stable order. A booking checking
// out on day 1 is included: it occupies no grid cell under the half-open
// rule, but the timeline still draws its checkout-morning sliver.
func monthBookings(ctx iris.Context, year int, month time.Month) ([]calendar.Booking, bool) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := storage.DB.
		Where("date_from < ? AND date_to >= ?", nextMonth, monthStart).
		Order("date_from ASC, id ASC")

	claims := jwt.Get(ctx).(*utils.AccessToken)
	if claims.Role != "admin" {
		query = query.Where("prop_id IN (?)",
			storage.DB.Model(&models.Property{}).Select("prop_id").Where("owner_id = ?", claims.ID))
	}
	if propID := ctx.URLParam("propId"); propID != "" {
		query = query.Where("prop_id = ?", propID)
	}

	var rows []models.Booking
	if err := query.Find(&rows).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return nil, false
	}
	return models.CalendarBookings(rows), true
}

// GetCalendarGrid serves the month-grid view: the month context plus, per
// property, the bookings covering each day cell.
func GetCalendarGrid(ctx iris.Context) {
	year, month, ok := viewedMonth(ctx)
	if !ok {
		return
	}
	bookings, ok := monthBookings(ctx, year, month)
	if !ok {
		return
	}

	mc := calendar.BuildMonthContext(year, month)
	groups := calendar.GroupByProperty(bookings)
	membership := calendar.BuildDayMembership(groups, mc)

	rows := make([]iris.Map, 0, len(groups.PropertyIDs))
	for _, propID := range groups.PropertyIDs {
		rows = append(rows, iris.Map{
			"propId": propID,
			"days":   membership[propID],
		})
	}

	ctx.JSON(iris.Map{
		"month":      mc,
		"properties": rows,
	})
}

// GetCalendarTimeline serves the Gantt view: one row of bar geometries per
// property. Bars the clipping collapsed to nothing are dropped here, as the
// renderer contract allows.
func GetCalendarTimeline(ctx iris.Context) {
	year, month, ok := viewedMonth(ctx)
	if !ok {
		return
	}
	bookings, ok := monthBookings(ctx, year, month)
	if !ok {
		return
	}

	mc := calendar.BuildMonthContext(year, month)
	groups := calendar.GroupByProperty(bookings)

	byID := make(map[string]calendar.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	rows := make([]iris.Map, 0, len(groups.PropertyIDs))
	for _, row := range calendar.BuildTimeline(groups, mc) {
		bars := make([]iris.Map, 0, len(row.Bars))
		for _, bar := range row.Bars {
			if bar.WidthPercent <= 0 {
				continue
			}
			b := byID[bar.BookingID]
			bars = append(bars, iris.Map{
				"bookId":       bar.BookingID,
				"leftPercent":  bar.LeftPercent,
				"widthPercent": bar.WidthPercent,
				"guestName":    b.GuestFirstName + " " + b.GuestLastName,
				"status":       b.Status,
				"color":        b.Status.Color(),
				"channelName":  b.ChannelName,
			})
		}
		rows = append(rows, iris.Map{"propId": row.PropertyID, "bars": bars})
	}

	ctx.JSON(iris.Map{
		"month":      mc,
		"properties": rows,
	})
}
