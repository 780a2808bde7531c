// Package keys loads the secp256k1 key that signs bridge transactions.
// The key is configured either as plain hex or encrypted with AES-256-GCM
// under a passphrase-derived key.
package keys

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/hkdf"

	"github.com/chainsafe/vebal-sync/pkg/config"
)

const (
	saltSize       = 16
	privateKeySize = 32
	hkdfInfo       = "vebal-sync-signer-key"
)

// ErrNoSignerKey is returned when the ethereum section carries no key at all.
var ErrNoSignerKey = errors.New("no signer key configured")

// Signer is the account that submits sync transactions.
type Signer struct {
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
}

// LoadSigner builds the signer from the ethereum config section.
func LoadSigner(cfg *config.EthereumConfig) (*Signer, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case cfg.EncryptedSignerKey != "":
		raw, err = DecryptSignerKey(cfg.EncryptedSignerKey, cfg.KeyPassphrase)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt signer key: %w", err)
		}
	case cfg.SignerPrivateKey != "":
		raw = common.FromHex(strings.TrimSpace(cfg.SignerPrivateKey))
	default:
		return nil, ErrNoSignerKey
	}

	return SignerFromBytes(raw)
}

// SignerFromBytes wraps a raw 32-byte secp256k1 key.
func SignerFromBytes(raw []byte) (*Signer, error) {
	if len(raw) != privateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", privateKeySize, len(raw))
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid secp256k1 key: %w", err)
	}
	return &Signer{
		PrivateKey: key,
		Address:    crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// EncryptSignerKey encrypts a raw private key under passphrase.
// Output is base64(salt || nonce || ciphertext || tag).
func EncryptSignerKey(privateKey []byte, passphrase string) (string, error) {
	if len(privateKey) != privateKeySize {
		return "", fmt.Errorf("private key must be %d bytes (secp256k1)", privateKeySize)
	}
	if passphrase == "" {
		return "", errors.New("passphrase is empty")
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, saltSize+len(nonce)+privateKeySize+gcm.Overhead())
	out = append(out, salt...)
	out = gcm.Seal(append(out, nonce...), nonce, privateKey, nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptSignerKey reverses EncryptSignerKey.
func DecryptSignerKey(encrypted, passphrase string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encrypted))
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(data) < saltSize {
		return nil, errors.New("ciphertext too short")
	}
	salt, data := data[:saltSize], data[saltSize:]

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}
	nonce, ciphertext := data[:nonceSize], data[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	if len(plaintext) != privateKeySize {
		return nil, fmt.Errorf("decrypted key has wrong size: got %d, want %d", len(plaintext), privateKeySize)
	}
	return plaintext, nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(passphrase), salt, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}
