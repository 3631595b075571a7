package routes

import (
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/coinflows/frontdesk/models"
	"github.com/coinflows/frontdesk/storage"
	"github.com/coinflows/frontdesk/utils"
)

// GetBookings lists bookings for the bookings table screen, filterable by
// status, property and month window, paginated.
func GetBookings(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 50)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	query := storage.DB.Model(&models.Booking{})

	claims := jwt.Get(ctx).(*utils.AccessToken)
	if claims.Role != "admin" {
		query = query.Where("prop_id IN (?)",
			storage.DB.Model(&models.Property{}).Select("prop_id").Where("owner_id = ?", claims.ID))
	}

	if status := ctx.URLParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if propID := ctx.URLParam("propId"); propID != "" {
		query = query.Where("prop_id = ?", propID)
	}

	// month window: bookings overlapping the given month under the half-open
	// rule (a stay checking out on the 1st does not belong to the month)
	year := ctx.URLParamIntDefault("year", 0)
	month := ctx.URLParamIntDefault("month", 0)
	if year != 0 && month >= 1 && month <= 12 {
		monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		nextMonth := monthStart.AddDate(0, 1, 0)
		query = query.Where("date_from < ? AND date_to > ?", nextMonth, monthStart)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	err := query.Order("date_from ASC, id ASC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&bookings).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, bookings, page, perPage, total)
}
