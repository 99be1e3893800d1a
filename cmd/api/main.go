package main

import (
	_ "pure_essence_qms/docs"
	"pure_essence_qms/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pure Essence QMS API
// @version         1.0
// @description     Quality-event workflow engine: lot traceability, non-conformities, visual inspection and water quality.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
