package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Svix delivery headers sent with every Clerk webhook.
const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

// DefaultTolerance is how far a delivery timestamp may drift from the server clock.
const DefaultTolerance = 5 * time.Minute

const secretPrefix = "whsec_"

var (
	ErrMissingHeaders   = errors.New("missing webhook signature headers")
	ErrInvalidTimestamp = errors.New("webhook timestamp outside tolerance")
	ErrInvalidSignature = errors.New("no matching webhook signature")
)

// Verifier checks Svix signatures: HMAC-SHA256 over "id.timestamp.body".
type Verifier struct {
	key       []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier decodes a "whsec_" prefixed base64 signing secret.
func NewVerifier(secret string) (*Verifier, error) {
	encoded := strings.TrimPrefix(strings.TrimSpace(secret), secretPrefix)
	if encoded == "" {
		return nil, errors.New("webhook secret is empty")
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode webhook secret: %w", err)
	}
	return &Verifier{key: key, tolerance: DefaultTolerance, now: time.Now}, nil
}

// Verify returns nil when one of the signatures in the header matches body.
func (v *Verifier) Verify(header http.Header, body []byte) error {
	id := header.Get(HeaderID)
	ts := header.Get(HeaderTimestamp)
	sigs := header.Get(HeaderSignature)
	if id == "" || ts == "" || sigs == "" {
		return ErrMissingHeaders
	}

	seconds, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}
	drift := v.now().Sub(time.Unix(seconds, 0))
	if drift > v.tolerance || drift < -v.tolerance {
		return ErrInvalidTimestamp
	}

	expected := v.sign(id, ts, body)
	for _, candidate := range strings.Fields(sigs) {
		version, sig, ok := strings.Cut(candidate, ",")
		if !ok || version != "v1" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}
	return ErrInvalidSignature
}

func (v *Verifier) sign(id, ts string, body []byte) []byte {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(id))
	mac.Write([]byte{'.'})
	mac.Write([]byte(ts))
	mac.Write([]byte{'.'})
	mac.Write(body)
	return mac.Sum(nil)
}
