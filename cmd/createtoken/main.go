package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"whitelotus.com/wms/security"
)

// Prints a one-hour admin session token for API testing.
func main() {
	_ = godotenv.Load()

	secret := os.Getenv("WMS_JWT_SECRET")
	if secret == "" {
		log.Fatal("WMS_JWT_SECRET is required")
	}

	token, err := security.CreateAdminToken(&security.AdminIdentity{
		Username:     "admin",
		Organization: "White Lotus Corp",
	}, secret, 3600)
	if err != nil {
		log.Fatalf("create token: %v", err)
	}
	fmt.Println(token)
}
