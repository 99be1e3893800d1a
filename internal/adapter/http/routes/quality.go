package routes

import (
	"pure_essence_qms/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLots        = "/lots"
	PathNCs         = "/ncs"
	PathWaterChecks = "/water-checks"
	PathAudit       = "/audit"
)

func addQualityRoutes(
	rg *gin.RouterGroup,
	lotHandler *handlers.LotHandler,
	ncHandler *handlers.NonConformityHandler,
	inspectionHandler *handlers.InspectionHandler,
	waterHandler *handlers.WaterHandler,
	auditHandler *handlers.AuditHandler,
) {
	lots := rg.Group(PathLots)
	{
		lots.POST("", lotHandler.CreateLot)
		lots.GET("", lotHandler.ListLots)
		lots.GET("/:id", lotHandler.GetLot)
		lots.PATCH("/:id/status", lotHandler.UpdateLotStatus)
		lots.POST("/:id/qc-results", lotHandler.RecordQCResult)
		lots.POST("/:id/inspection", inspectionHandler.SubmitInspection)
		lots.GET("/:id/ncs", ncHandler.ListNCsForLot)
		lots.GET("/:id/analysis", lotHandler.AnalyzeLot)
	}

	ncs := rg.Group(PathNCs)
	{
		ncs.POST("", ncHandler.CreateNC)
		ncs.GET("", ncHandler.ListNCs)
		ncs.GET("/:id", ncHandler.GetNC)
		ncs.PATCH("/:id", ncHandler.UpdateNC)
	}

	water := rg.Group(PathWaterChecks)
	{
		water.POST("", waterHandler.RecordWaterCheck)
		water.GET("", waterHandler.ListWaterChecks)
	}

	auditGroup := rg.Group(PathAudit)
	{
		auditGroup.GET("/logs", auditHandler.ListLogs)
		auditGroup.GET("/notifications", auditHandler.ListNotifications)
	}
}
