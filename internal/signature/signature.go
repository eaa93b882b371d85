// Package signature verifies Mercury webhook signatures.
//
// Mercury signs each delivery with the subscription secret and sends
//
//	Mercury-Signature: t=<unix-seconds>,v1=<hex hmac-sha256>
//
// where the MAC covers "<t>.<raw body>".
package signature

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/grantsy/mercuryhook/internal/infra/logger"
)

const (
	Header           = "Mercury-Signature"
	DefaultTolerance = 300 * time.Second
)

type Verifier struct {
	tolerance time.Duration
	now       func() time.Time
}

type Option func(*Verifier)

// WithTolerance overrides the replay window.
func WithTolerance(d time.Duration) Option {
	return func(v *Verifier) {
		if d > 0 {
			v.tolerance = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		v.now = now
	}
}

func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify reports whether header is a valid, fresh signature of body under
// secret. All failures look the same to the caller; the reason is only logged.
func (v *Verifier) Verify(ctx context.Context, header string, body []byte, secret string) bool {
	if reason := v.check(header, body, secret); reason != "" {
		logger.FromContext(ctx).Debug("webhook signature rejected", slog.String("reason", reason))
		return false
	}
	return true
}

// check returns "" when valid, otherwise a short failure reason.
func (v *Verifier) check(header string, body []byte, secret string) string {
	if header == "" {
		return "missing header"
	}
	if secret == "" {
		return "no secret"
	}

	timestamp, sig := parseHeader(header)
	if timestamp == "" || sig == "" {
		return "malformed header"
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return "malformed timestamp"
	}
	// |now - ts| <= tolerance, written to avoid overflow on hostile input
	// whole-second resolution, matching the header's unix seconds
	now := v.now().Unix()
	limit := int64(v.tolerance / time.Second)
	if ts < now-limit || ts > now+limit {
		return "timestamp outside tolerance"
	}

	received, err := hex.DecodeString(sig)
	if err != nil {
		return "malformed signature"
	}
	expected := Compute(secret, timestamp, body)
	if len(received) != len(expected) {
		return "signature length mismatch"
	}
	if subtle.ConstantTimeCompare(received, expected) != 1 {
		return "signature mismatch"
	}
	return ""
}

// parseHeader extracts the t and v1 fields. The first occurrence of each wins.
func parseHeader(header string) (timestamp, sig string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			if timestamp == "" {
				timestamp = value
			}
		case "v1":
			if sig == "" {
				sig = value
			}
		}
	}
	return timestamp, sig
}

// Compute returns the raw HMAC-SHA256 of "<timestamp>.<body>".
func Compute(secret, timestamp string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte{'.'})
	mac.Write(body)
	return mac.Sum(nil)
}

// Sign builds a header value for body at ts. Used by tests and local tooling.
func Sign(secret string, ts time.Time, body []byte) string {
	timestamp := strconv.FormatInt(ts.Unix(), 10)
	return "t=" + timestamp + ",v1=" + hex.EncodeToString(Compute(secret, timestamp, body))
}
