// Package middleware provides HTTP middleware components for the
// authorization engine API.
package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fleetcard/authengine/internal/api"
)

// SignatureHeader carries the webhook signature: t=<unix seconds>,v1=<hex>.
const SignatureHeader = "Authorization-Signature"

// MaxWebhookBody bounds the webhook payload size.
const MaxWebhookBody = 1 << 20

// Signature verification errors
var (
	ErrMissingSignature   = errors.New("missing signature")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrSignatureExpired   = errors.New("signature timestamp outside tolerance")
	ErrSignatureMismatch  = errors.New("signature mismatch")
)

func writeError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: code, Message: message}) //nolint:errcheck // client gone
}

// Signer computes and checks HMAC-SHA256 webhook signatures over
// "<timestamp>.<body>".
type Signer struct {
	now       func() time.Time
	secret    []byte
	tolerance time.Duration
}

// NewSigner creates a Signer. An empty secret disables verification.
func NewSigner(secret string, tolerance time.Duration) *Signer {
	return &Signer{
		secret:    []byte(secret),
		tolerance: tolerance,
		now:       time.Now,
	}
}

// Enabled reports whether a signing secret is configured.
func (s *Signer) Enabled() bool {
	return len(s.secret) > 0
}

// Sign returns the header value for body signed at the given time.
func (s *Signer) Sign(body []byte, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	return "t=" + ts + ",v1=" + hex.EncodeToString(s.mac(ts, body))
}

func (s *Signer) mac(ts string, body []byte) []byte {
	m := hmac.New(sha256.New, s.secret)
	m.Write([]byte(ts))
	m.Write([]byte{'.'})
	m.Write(body)
	return m.Sum(nil)
}

// Verify checks header against body. Any v1 entry may match, so a sender can
// rotate secrets by signing with both.
func (s *Signer) Verify(header string, body []byte) error {
	if header == "" {
		return ErrMissingSignature
	}

	var (
		ts         string
		signatures [][]byte
	)
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return ErrMalformedSignature
		}
		switch key {
		case "t":
			ts = value
		case "v1":
			sig, err := hex.DecodeString(value)
			if err != nil {
				return ErrMalformedSignature
			}
			signatures = append(signatures, sig)
		}
	}
	if ts == "" || len(signatures) == 0 {
		return ErrMalformedSignature
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ErrMalformedSignature
	}
	age := s.now().Sub(time.Unix(unix, 0))
	if age > s.tolerance || age < -s.tolerance {
		return ErrSignatureExpired
	}

	expected := s.mac(ts, body)
	for _, sig := range signatures {
		if hmac.Equal(sig, expected) {
			return nil
		}
	}
	return ErrSignatureMismatch
}

// VerifySignature rejects webhook requests whose body is not signed with the
// configured secret. The body is buffered and restored for the next handler.
func VerifySignature(signer *Signer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !signer.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxWebhookBody))
			if err != nil {
				writeError(w, http.StatusRequestEntityTooLarge, api.ErrorCodeInvalidRequest, "request body too large")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := signer.Verify(r.Header.Get(SignatureHeader), body); err != nil {
				logger.Warn("rejected webhook signature",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"error", err,
				)
				writeError(w, http.StatusUnauthorized, api.ErrorCodeInvalidSignature, fmt.Sprintf("webhook signature rejected: %v", err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
