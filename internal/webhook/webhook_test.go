package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"gigportal_backend/internal/accounts/repository"
	accounts "gigportal_backend/internal/accounts/service"
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

var testKey = []byte("clerk-webhook-test-key")

func testSecret() string {
	return "whsec_" + base64.StdEncoding.EncodeToString(testKey)
}

func signature(id string, ts int64, body []byte) string {
	mac := hmac.New(sha256.New, testKey)
	mac.Write([]byte(id + "." + strconv.FormatInt(ts, 10) + "."))
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func signedHeader(id string, ts int64, sig string) http.Header {
	h := http.Header{}
	h.Set(HeaderID, id)
	h.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	h.Set(HeaderSignature, sig)
	return h
}

func newTestVerifier(t *testing.T, now time.Time) *Verifier {
	t.Helper()
	v, err := NewVerifier(testSecret())
	if err != nil {
		t.Fatalf("expected verifier, got %v", err)
	}
	v.now = func() time.Time { return now }
	return v
}

func TestVerify(t *testing.T) {
	now := time.Unix(1700000000, 0)
	body := []byte(`{"type":"user.created"}`)
	good := signature("msg_1", now.Unix(), body)
	v := newTestVerifier(t, now)

	cases := []struct {
		name   string
		header http.Header
		body   []byte
		want   error
	}{
		{"valid", signedHeader("msg_1", now.Unix(), good), body, nil},
		{"valid among rotated keys", signedHeader("msg_1", now.Unix(), "v1,c3RhbGU= "+good), body, nil},
		{"within tolerance", signedHeader("msg_1", now.Add(-4*time.Minute).Unix(), signature("msg_1", now.Add(-4*time.Minute).Unix(), body)), body, nil},
		{"tampered body", signedHeader("msg_1", now.Unix(), good), []byte(`{"type":"user.deleted"}`), ErrInvalidSignature},
		{"other message id", signedHeader("msg_2", now.Unix(), good), body, ErrInvalidSignature},
		{"unknown version", signedHeader("msg_1", now.Unix(), "v2"+good[2:]), body, ErrInvalidSignature},
		{"too old", signedHeader("msg_1", now.Add(-6*time.Minute).Unix(), signature("msg_1", now.Add(-6*time.Minute).Unix(), body)), body, ErrInvalidTimestamp},
		{"from the future", signedHeader("msg_1", now.Add(6*time.Minute).Unix(), signature("msg_1", now.Add(6*time.Minute).Unix(), body)), body, ErrInvalidTimestamp},
		{"missing headers", http.Header{}, body, ErrMissingHeaders},
	}

	for _, tc := range cases {
		err := v.Verify(tc.header, tc.body)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestNewVerifierRejectsBadSecret(t *testing.T) {
	for _, secret := range []string{"", "whsec_", "whsec_not base64!"} {
		if _, err := NewVerifier(secret); err == nil {
			t.Fatalf("expected secret %q to be rejected", secret)
		}
	}
}

type fakeUsers struct {
	upserted []accounts.ClerkUser
	deleted  []string
	err      error
}

func (f *fakeUsers) UpsertFromClerk(_ context.Context, cu accounts.ClerkUser) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	f.upserted = append(f.upserted, cu)
	return repository.User{ClerkID: cu.ClerkID}, nil
}

func (f *fakeUsers) DeleteByClerkID(_ context.Context, clerkID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, clerkID)
	return nil
}

const userCreatedBody = `{
	"type": "user.created",
	"object": "event",
	"data": {
		"id": "user_2abc",
		"first_name": "Sanne",
		"last_name": "de Vries",
		"image_url": "https://img.clerk.com/sanne.png",
		"primary_email_address_id": "idn_2",
		"email_addresses": [
			{"id": "idn_1", "email_address": "old@example.dev"},
			{"id": "idn_2", "email_address": "sanne@example.dev"}
		],
		"public_metadata": {},
		"unsafe_metadata": {"locale": "nl"}
	}
}`

func newTestEngine(t *testing.T, users UserSync, now time.Time) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	m := NewModule(users, newTestVerifier(t, now), logger.Discard())
	m.RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: engine.Group("/api/v1")})
	return engine
}

func deliver(engine *gin.Engine, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/clerk", bytes.NewBufferString(body))
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHandleClerkUpsertsUser(t *testing.T) {
	now := time.Unix(1700000000, 0)
	users := &fakeUsers{}
	engine := newTestEngine(t, users, now)

	rec := deliver(engine, userCreatedBody, signedHeader("msg_1", now.Unix(), signature("msg_1", now.Unix(), []byte(userCreatedBody))))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(users.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(users.upserted))
	}
	got := users.upserted[0]
	if got.ClerkID != "user_2abc" || got.Email != "sanne@example.dev" || got.Locale != "nl" || got.LastName != "de Vries" {
		t.Fatalf("unexpected clerk user %+v", got)
	}
}

func TestHandleClerkRejectsBadSignature(t *testing.T) {
	now := time.Unix(1700000000, 0)
	users := &fakeUsers{}
	engine := newTestEngine(t, users, now)

	rec := deliver(engine, userCreatedBody, signedHeader("msg_1", now.Unix(), signature("msg_1", now.Unix(), []byte("{}"))))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	rec = deliver(engine, userCreatedBody, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without headers, got %d", rec.Code)
	}
	if len(users.upserted) != 0 {
		t.Fatal("expected no upsert for rejected deliveries")
	}
}

func TestHandleClerkDeletesAndIgnores(t *testing.T) {
	now := time.Unix(1700000000, 0)
	users := &fakeUsers{}
	engine := newTestEngine(t, users, now)

	deleted := `{"type":"user.deleted","data":{"id":"user_2abc","deleted":true}}`
	rec := deliver(engine, deleted, signedHeader("msg_2", now.Unix(), signature("msg_2", now.Unix(), []byte(deleted))))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(users.deleted) != 1 || users.deleted[0] != "user_2abc" {
		t.Fatalf("expected user_2abc deleted, got %v", users.deleted)
	}

	session := `{"type":"session.created","data":{"id":"sess_1"}}`
	rec = deliver(engine, session, signedHeader("msg_3", now.Unix(), signature("msg_3", now.Unix(), []byte(session))))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected unknown events to be acknowledged, got %d", rec.Code)
	}
}

func TestHandleClerkSyncFailureIsServerError(t *testing.T) {
	now := time.Unix(1700000000, 0)
	engine := newTestEngine(t, &fakeUsers{err: errors.New("db down")}, now)

	rec := deliver(engine, userCreatedBody, signedHeader("msg_1", now.Unix(), signature("msg_1", now.Unix(), []byte(userCreatedBody))))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 so Clerk retries, got %d", rec.Code)
	}
}

func TestHandleClerkWithoutVerifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewModule(&fakeUsers{}, nil, logger.Discard()).RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: engine.Group("/api/v1")})

	if rec := deliver(engine, userCreatedBody, nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestPrimaryEmailFallsBackToFirstAddress(t *testing.T) {
	u := clerkUser{EmailAddresses: []clerkEmailAddress{{ID: "a", EmailAddress: "first@example.dev"}}}
	if got := u.primaryEmail(); got != "first@example.dev" {
		t.Fatalf("expected first address, got %q", got)
	}
}
