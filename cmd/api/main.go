package main

import (
	"log"

	_ "eagles_transportes/docs"
	"eagles_transportes/internal/adapter/http/routes"
	"eagles_transportes/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Eagles Transportes API
// @version         1.0
// @description     Freight back-office (lifecycle, boleto billing, dashboard analytics) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
