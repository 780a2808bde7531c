package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// HeaderSignature carries an EIP-191 signature over HeaderMessage.
	HeaderSignature = "X-Signature"
	// HeaderMessage carries the message produced by SignedMessage.
	HeaderMessage = "X-Message"

	// DefaultSignatureMaxAge bounds how old a signed message may be.
	DefaultSignatureMaxAge = 5 * time.Minute
)

// Authenticator resolves the caller of a request from either a bearer JWT
// or a wallet signature and stores the address in the request context.
type Authenticator struct {
	validator *JWTValidator
	maxAge    time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewAuthenticator creates an Authenticator. validator may be nil, in which
// case only wallet signatures are accepted.
func NewAuthenticator(validator *JWTValidator, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		validator: validator,
		maxAge:    DefaultSignatureMaxAge,
		now:       time.Now,
		logger:    logger,
	}
}

// Middleware rejects requests that carry no valid credentials.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token, ok := bearerToken(r); ok {
			if !a.validator.IsConfigured() {
				unauthorized(w, "bearer tokens are not accepted")
				return
			}
			addr, err := a.validator.ValidateToken(ctx, token)
			if err != nil {
				a.logger.Debug("Rejected bearer token", zap.Error(err))
				unauthorized(w, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, addr)))
			return
		}

		sig, msg := r.Header.Get(HeaderSignature), r.Header.Get(HeaderMessage)
		if sig == "" || msg == "" {
			unauthorized(w, "missing credentials")
			return
		}
		addr, err := VerifySignedMessage(msg, sig, a.now(), a.maxAge)
		if err != nil {
			a.logger.Debug("Rejected wallet signature", zap.Error(err))
			unauthorized(w, "invalid signature")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(ctx, addr)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
