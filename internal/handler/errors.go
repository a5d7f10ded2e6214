package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/fas_dashboard/internal/service"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

var badRequestErrors = []error{
	utils.ErrInvalidProductType,
	utils.ErrInvalidTermUnit,
	utils.ErrInvalidScenarioType,
	utils.ErrInvalidSubType,
}

// writeError maps service errors onto the response envelope.
func writeError(c *gin.Context, err error, fallback string) {
	var inUse *service.ProductInUseError
	switch {
	case errors.As(err, &inUse):
		utils.ErrorWithDetails(c, 409, utils.ErrProductInUse.Error(), inUse.Error(), gin.H{
			"productId":   inUse.ProductID,
			"scenarioIds": inUse.ScenarioIDs,
		})
		return
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, utils.ErrProductNotFound.Error(), "Product not found")
		return
	case errors.Is(err, utils.ErrScenarioNotFound):
		utils.Error(c, 404, utils.ErrScenarioNotFound.Error(), "Scenario not found")
		return
	case errors.Is(err, utils.ErrIDCollision):
		utils.Error(c, 409, utils.ErrIDCollision.Error(), "Identifier already in use, retry the request")
		return
	case errors.Is(err, utils.ErrExportDisabled):
		utils.Error(c, 503, utils.ErrExportDisabled.Error(), "Export archiving is not configured")
		return
	}

	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			utils.Error(c, 400, sentinel.Error(), err.Error())
			return
		}
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(fallback)
	utils.Error(c, 500, "INTERNAL_ERROR", fallback)
}
