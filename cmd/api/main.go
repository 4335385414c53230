package main

import (
	_ "gestao_producao/docs"
	"gestao_producao/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão de Produção API
// @version         1.0
// @description     Production order scheduling: stage planning, shop-floor appointments, progress and delivery urgency.
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
