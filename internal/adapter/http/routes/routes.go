package routes

import (
	"log"
	"os"
	"strconv"

	_ "pure_essence_qms/docs" // This will be auto-generated
	"pure_essence_qms/internal/adapter/http/handlers"
	repository2 "pure_essence_qms/internal/adapter/persistence/repository"
	"pure_essence_qms/internal/infrastructure/analysis"
	"pure_essence_qms/internal/infrastructure/audit"
	"pure_essence_qms/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	lotRepo := repository2.NewMemoryLotRepository()
	ncRepo := repository2.NewMemoryNonConformityRepository()
	waterRepo := repository2.NewMemoryWaterCheckRepository()

	trail := audit.NewTrail()
	advisor := analysis.NewAdvisor(os.Getenv("ANALYSIS_API_KEY"))

	lotUseCase := usecase.NewLotUseCase(lotRepo)
	ncUseCase := usecase.NewNonConformityUseCase(ncRepo, lotRepo, lotUseCase)
	inspectionUseCase := usecase.NewInspectionUseCase(lotUseCase, ncUseCase)
	waterUseCase := usecase.NewWaterUseCase(waterRepo, ncUseCase)

	lotHandler := handlers.NewLotHandler(lotUseCase, advisor, trail)
	ncHandler := handlers.NewNonConformityHandler(ncUseCase, trail)
	inspectionHandler := handlers.NewInspectionHandler(inspectionUseCase, trail)
	waterHandler := handlers.NewWaterHandler(waterUseCase, trail)
	auditHandler := handlers.NewAuditHandler(trail)

	// Routes publiques
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQualityRoutes(v1, lotHandler, ncHandler, inspectionHandler, waterHandler, auditHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
