//go:build ignore

// This script prints the headers that authenticate a sync request with a
// wallet signature instead of a JWT.
//
// Run with: SIGNER_PRIVATE_KEY=0x... go run scripts/sign-sync-request.go
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/vebal-sync/pkg/auth"
)

func main() {
	hexKey := strings.TrimPrefix(strings.TrimSpace(os.Getenv("SIGNER_PRIVATE_KEY")), "0x")
	if hexKey == "" {
		fmt.Fprintln(os.Stderr, "SIGNER_PRIVATE_KEY must be set")
		os.Exit(2)
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid private key: %v\n", err)
		os.Exit(1)
	}

	message := auth.SignedMessage(time.Now())
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign: %v\n", err)
		os.Exit(1)
	}
	sig[64] += 27

	fmt.Fprintf(os.Stderr, "address: %s\n", crypto.PubkeyToAddress(key.PublicKey).Hex())
	fmt.Printf("%s: %s\n", auth.HeaderMessage, message)
	fmt.Printf("%s: %s\n", auth.HeaderSignature, hexutil.Encode(sig))
}
