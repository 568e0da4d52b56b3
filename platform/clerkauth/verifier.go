// Package clerkauth verifies Clerk session tokens against the instance JWKS.
package clerkauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gigportal_backend/platform/logger"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the Clerk session token claims the backend relies on.
type Claims struct {
	jwt.RegisteredClaims
	SessionID       string `json:"sid,omitempty"`
	AuthorizedParty string `json:"azp,omitempty"`
}

// Verifier validates session tokens and returns their claims.
type Verifier struct {
	keyFunc jwt.Keyfunc
	issuer  string
	log     *logger.Logger
}

// NewVerifier creates a verifier that fetches and caches signing keys from jwksURL.
// keyfunc refreshes the key set in the background until ctx is cancelled.
func NewVerifier(ctx context.Context, jwksURL, issuer string, log *logger.Logger) (*Verifier, error) {
	if strings.TrimSpace(jwksURL) == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	log.Info("clerk verifier initialized", "jwks_url", jwksURL)
	return NewVerifierWithKeyfunc(jwks.Keyfunc, issuer, log), nil
}

// NewVerifierWithKeyfunc builds a verifier around an existing key lookup.
func NewVerifierWithKeyfunc(kf jwt.Keyfunc, issuer string, log *logger.Logger) *Verifier {
	return &Verifier{keyFunc: kf, issuer: issuer, log: log}
}

// Verify parses rawToken and returns its claims. Only RS256 and ES256 are accepted.
func (v *Verifier) Verify(rawToken string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(rawToken, &Claims{}, v.keyFunc, opts...)
	if err != nil || !token.Valid {
		v.log.Debug("clerk token rejected", "error", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
