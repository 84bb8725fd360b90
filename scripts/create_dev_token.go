package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Mints a bearer token for local testing when AUTH_REQUIRED=true.
//
//	go run scripts/create_dev_token.go -role admin -ttl 24h
func main() {
	role := flag.String("role", "admin", "User role (admin or user)")
	subject := flag.String("sub", "dev", "Token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  *subject,
		"role": *role,
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Printf("Token for role '%s' (expires %s):\n%s\n\n", *role, now.Add(*ttl).Format(time.RFC3339), token)
	fmt.Println("Use it with:")
	fmt.Printf("curl -X DELETE http://localhost:5555/restaurants/1 -H 'Authorization: Bearer %s'\n", token)
}
