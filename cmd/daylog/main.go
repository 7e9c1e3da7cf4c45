// filepath: cmd/daylog/main.go
package main

import (
	"daylog/internal/cli"
)

// @title Daylog API
// @version 1.0.0
// @description REST API for tracking daily color-coded entries, their effects, and community feedback.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
