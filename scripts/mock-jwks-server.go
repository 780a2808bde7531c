//go:build ignore

// mock-jwks-server.go - JWKS and token issuer for local testing of the sync endpoint
//
// Usage:
//
//	go run scripts/mock-jwks-server.go
//
// Point jwks.url at http://localhost:8088/.well-known/jwks.json and
// jwks.issuer at http://localhost:8088. Tokens are RS256 signed with a key
// generated at startup.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chainsafe/vebal-sync/pkg/auth"
)

const (
	port   = 8088
	keyID  = "local-dev"
	issuer = "http://localhost:8088"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func main() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("generate key: %v", err)
	}

	http.HandleFunc("/.well-known/jwks.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, auth.JWKS{Keys: []auth.JWK{{
			Kid: keyID,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	})
	http.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		handleToken(w, r, key)
	})

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Mock JWKS server starting on http://localhost%s", addr)
	log.Printf("GET  /.well-known/jwks.json      - Public key set")
	log.Printf("POST /oauth/token?address=0x...  - Returns an RS256 token for the address")
	log.Fatal(http.ListenAndServe(addr, nil))
}

func handleToken(w http.ResponseWriter, r *http.Request, key *rsa.PrivateKey) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	address, err := auth.ParseAddress(r.URL.Query().Get("address"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":             issuer,
		"sub":             address.Hex(),
		"iat":             now.Unix(),
		"exp":             now.Add(24 * time.Hour).Unix(),
		auth.AddressClaim: address.Hex(),
	})
	token.Header["kid"] = keyID

	signed, err := token.SignedString(key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, tokenResponse{AccessToken: signed, TokenType: "Bearer", ExpiresIn: 86400})
	log.Printf("Issued token for %s", address.Hex())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
