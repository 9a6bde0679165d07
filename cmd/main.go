// cmd/main.go
package main

import (
	"github.com/derangga/laundry-app-sub001/app"

	_ "github.com/derangga/laundry-app-sub001/docs"
)

// @title           Laundry Shop API
// @version         1.0
// @description     Management API for a laundry shop: customers, service catalog, orders and receipts.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
