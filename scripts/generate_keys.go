//go:build ignore

// This script generates secure random keys for session verification and
// service-to-service API access.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	fmt.Println("=== Cart Service Key Generator ===")
	fmt.Println()

	// JWT Secret Key (32 bytes = 256 bits)
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	// API Key (24 bytes)
	apiKey, err := generateSecureKey(24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your environment:")
	fmt.Println()
	fmt.Printf("export JWT_SECRET_KEY=%q\n", jwtSecret)
	fmt.Printf("export API_KEYS=%q\n", apiKey)
}
