// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

// Command admin-token mints a signed admin JWT for the restricted API
// endpoints (event deletion, booking listing).
//
// Tokens are minted offline with the RSA private key; the API server only
// ever loads the public key. Run this on an operator machine and pass the
// token as a Bearer header.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kenryalonzo/eventdev/internal/platform/constants"
	"github.com/kenryalonzo/eventdev/internal/platform/sec"
)

func main() {
	privateKeyPath := flag.String("private-key", "./keys/private.pem", "Path to the RSA private key")
	publicKeyPath := flag.String("public-key", "./keys/public.pem", "Path to the RSA public key")
	name := flag.String("name", "ops", "Operator name embedded in the token")
	ttlHours := flag.Int("ttl", 24*7, "Token lifetime in hours")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	tokenService, err := sec.NewTokenService(*privateKeyPath, *publicKeyPath, constants.AuthIssuer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading keys: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate a key pair first:\n")
		fmt.Fprintf(os.Stderr, "  openssl genrsa -out keys/private.pem 2048\n")
		fmt.Fprintf(os.Stderr, "  openssl rsa -in keys/private.pem -pubout -out keys/public.pem\n")
		os.Exit(1)
	}

	lifetime := time.Duration(*ttlHours) * time.Hour

	token, err := tokenService.GenerateToken(*name, constants.RoleAdmin, lifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	expiresAt := time.Now().Add(lifetime)

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_at":   expiresAt.Format(time.RFC3339),
			"name":         *name,
			"role":         constants.RoleAdmin,
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(output)
		return
	}

	fmt.Println("Admin Token Generated")
	fmt.Println("=====================")
	fmt.Printf("Name:     %s\n", *name)
	fmt.Printf("Role:     %s\n", constants.RoleAdmin)
	fmt.Printf("Expires:  %s\n", expiresAt.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer <token>' -X DELETE http://localhost:8080/api/v1/events/<slug>\n")
}
