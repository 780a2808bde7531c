package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

const (
	jwksFetchTimeout = 10 * time.Second
	// minKeyRefresh bounds how often an unknown kid may trigger a JWKS fetch.
	minKeyRefresh = 30 * time.Second
)

// AddressClaim is the JWT claim carrying the caller's EVM address. The
// subject is used when the claim is absent.
const AddressClaim = "evm_address"

var (
	// ErrUnknownKey is returned when a token's kid is not in the key set.
	ErrUnknownKey = errors.New("signing key not found")

	errNoJWKS = errors.New("JWKS URL not configured")
)

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// Claims are the token claims the sync API reads.
type Claims struct {
	jwt.RegisteredClaims
	EVMAddress string `json:"evm_address,omitempty"`
}

// address returns the caller named by the token.
func (c *Claims) address() (common.Address, error) {
	raw := c.EVMAddress
	if raw == "" {
		raw = c.Subject
	}
	addr, err := ParseAddress(raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("token does not name an EVM address: %w", err)
	}
	return addr, nil
}

// JWTValidator checks RS256/384/512 tokens against the keys published at a
// JWKS URL. The key set is replaced as a whole whenever a token names a kid
// that is not cached, at most once per minKeyRefresh.
type JWTValidator struct {
	jwksURL string
	issuer  string
	client  *http.Client
	now     func() time.Time

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
	refresh   singleflight.Group
}

// NewJWTValidator creates a validator for the given JWKS URL. An empty issuer
// accepts any iss claim.
func NewJWTValidator(jwksURL, issuer string) *JWTValidator {
	return &JWTValidator{
		jwksURL: jwksURL,
		issuer:  issuer,
		client:  &http.Client{Timeout: jwksFetchTimeout},
		now:     time.Now,
		keys:    make(map[string]*rsa.PublicKey),
	}
}

// IsConfigured returns true if JWKS validation is configured
func (v *JWTValidator) IsConfigured() bool {
	return v != nil && v.jwksURL != ""
}

// ValidateToken validates a token and returns the EVM address it was issued to.
func (v *JWTValidator) ValidateToken(ctx context.Context, tokenString string) (common.Address, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid in token header")
		}
		return v.key(ctx, kid)
	}, opts...)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims.address()
}

func (v *JWTValidator) cached(kid string) (*rsa.PublicKey, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	key, ok := v.keys[kid]
	return key, ok
}

func (v *JWTValidator) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok := v.cached(kid); ok {
		return key, nil
	}

	v.mu.RLock()
	recent := !v.fetchedAt.IsZero() && v.now().Sub(v.fetchedAt) < minKeyRefresh
	v.mu.RUnlock()
	if !recent {
		if _, err, _ := v.refresh.Do("jwks", func() (any, error) {
			return nil, v.reload(ctx)
		}); err != nil {
			return nil, err
		}
	}

	if key, ok := v.cached(kid); ok {
		return key, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, kid)
}

// reload replaces the cached key set with the one currently published.
func (v *JWTValidator) reload(ctx context.Context) error {
	set, err := v.fetch(ctx)
	if err != nil {
		return err
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAPublicKey(k.N, k.E)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = v.now()
	v.mu.Unlock()
	return nil
}

func (v *JWTValidator) fetch(ctx context.Context) (*JWKS, error) {
	if v.jwksURL == "" {
		return nil, errNoJWKS
	}

	ctx, cancel := context.WithTimeout(ctx, jwksFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build JWKS request: %w", err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch JWKS: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode JWKS: %w", err)
	}
	return &set, nil
}

// parseRSAPublicKey builds a key from the base64url modulus and exponent of a JWK.
func parseRSAPublicKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	exp := new(big.Int).SetBytes(eb)
	if !exp.IsInt64() || exp.Int64() < 2 {
		return nil, errors.New("invalid exponent")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: int(exp.Int64())}, nil
}
