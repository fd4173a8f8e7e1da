package main

import (
	"os"

	_ "vetdesk/docs"
	"vetdesk/internal/adapter/http/routes"
	"vetdesk/internal/infrastructure/observability"

	_ "github.com/joho/godotenv/autoload"
)

// @title           VetDesk API
// @version         1.0
// @description     Clinic front-desk service for plan-covered veterinary attendances (lookup, coverage gating, cart and attendance lifecycle) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	observability.InitLogger("vetdesk", os.Getenv("APP_ENV"))
	routes.Run()
}
