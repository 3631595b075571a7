package routes

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/coinflows/frontdesk/models"
	"github.com/coinflows/frontdesk/storage"
	"github.com/coinflows/frontdesk/utils"
)

// GetProperties lists properties, scoped to the owner unless the caller is
// an admin.
func GetProperties(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var properties []models.Property
	query := storage.DB.Order("name ASC")
	if claims.Role != "admin" {
		query = query.Where("owner_id = ?", claims.ID)
	}
	if err := query.Find(&properties).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"data": properties})
}

// GetPropertyByPropID fetches one property by its channel key.
func GetPropertyByPropID(ctx iris.Context) {
	propID := ctx.Params().Get("propId")

	var property models.Property
	result := storage.DB.Where("prop_id = ?", propID).Limit(1).Find(&property)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	claims := jwt.Get(ctx).(*utils.AccessToken)
	if claims.Role != "admin" && (property.OwnerID == nil || *property.OwnerID != claims.ID) {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	ctx.JSON(iris.Map{"data": property})
}
