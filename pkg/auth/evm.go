package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignedMessagePrefix starts every message a wallet signs to authenticate
// against the API. The rest of the message is the unix time of signing.
const SignedMessagePrefix = "vebal-sync:"

var (
	// ErrMessageExpired is returned when a signed message is older than the allowed window.
	ErrMessageExpired = errors.New("signed message expired")
	// ErrMalformedMessage is returned when a signed message does not follow SignedMessagePrefix.
	ErrMalformedMessage = errors.New("malformed signed message")
)

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature
// Returns the recovered Ethereum address if valid
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(sigBytes) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", crypto.SignatureLength, len(sigBytes))
	}

	// v can be 0, 1, 27 or 28
	if sigBytes[crypto.RecoveryIDOffset] >= 27 {
		sigBytes[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(personalHash(message), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// SignedMessage builds the message a wallet signs at t.
func SignedMessage(t time.Time) string {
	return SignedMessagePrefix + strconv.FormatInt(t.Unix(), 10)
}

// VerifySignedMessage checks that message was produced by SignedMessage no
// more than maxAge before now, and returns the address that signed it.
func VerifySignedMessage(message, signature string, now time.Time, maxAge time.Duration) (common.Address, error) {
	ts, ok := strings.CutPrefix(message, SignedMessagePrefix)
	if !ok {
		return common.Address{}, ErrMalformedMessage
	}
	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	signedAt := time.Unix(unix, 0)
	if now.Sub(signedAt) > maxAge || signedAt.Sub(now) > maxAge {
		return common.Address{}, ErrMessageExpired
	}
	return VerifyEIP191Signature(message, signature)
}

func personalHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// ParseAddress validates and parses a 0x-prefixed hex EVM address
func ParseAddress(address string) (common.Address, error) {
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid EVM address %q", address)
	}
	return common.HexToAddress(address), nil
}
