package main

// @title Advisor Control API
// @version 1.0
// @description Backend of the advisor CRM: clients, prospect pipeline, captação ledger and offer reservations.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
