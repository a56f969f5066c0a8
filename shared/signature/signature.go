package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"pakt/config"
	"pakt/shared/clock"
	"pakt/shared/constant"
	"pakt/shared/failure"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrMalformedTimestamp = errors.New("malformed signature timestamp")
	ErrExpiredTimestamp   = errors.New("signature timestamp outside tolerance")
	ErrSignatureMismatch  = errors.New("signature mismatch")
)

// Config holds the shared secret and the client identifier sent with every signature.
type Config struct {
	SecretKey string
	ClientID  string
}

// FromConfig reads API_KEY and API_ID.
func FromConfig(cfg *config.Config) Config {
	return Config{
		SecretKey: cfg.API.Key,
		ClientID:  cfg.API.ID,
	}
}

// Result is the signature and the timestamp it was computed for, ready to be sent as headers.
type Result struct {
	Signature string `json:"signature"`
	TimeStamp string `json:"timeStamp"`
}

type Signer struct {
	secretKey []byte
	clientID  string
	clock     clock.Clock
	tolerance time.Duration
}

type Option func(*Signer)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(s *Signer) {
		s.clock = c
	}
}

// WithTolerance bounds how far a verified timestamp may drift from now. Zero disables the check.
func WithTolerance(d time.Duration) Option {
	return func(s *Signer) {
		s.tolerance = d
	}
}

// New builds a Signer. A missing secret or client id is replaced by the literal
// "undefined", which yields a well-formed signature the server will reject.
func New(cfg Config, opts ...Option) *Signer {
	if cfg.SecretKey == "" {
		log.Warn().Msg("signing secret is not configured, signing with placeholder \"undefined\"")

		cfg.SecretKey = constant.UndefinedValue
	}

	if cfg.ClientID == "" {
		log.Warn().Msg("client id is not configured, signing with placeholder \"undefined\"")

		cfg.ClientID = constant.UndefinedValue
	}

	s := &Signer{
		secretKey: []byte(cfg.SecretKey),
		clientID:  cfg.ClientID,
		clock:     clock.System{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Provide is the wire provider: secret and client id from config, replay window from
// APP_SIGNATURE_TOLERANCE_SECONDS.
func Provide(cfg *config.Config, c clock.Clock) *Signer {
	return New(FromConfig(cfg),
		WithClock(c),
		WithTolerance(time.Duration(cfg.App.Signature.ToleranceSeconds)*time.Second),
	)
}

// ClientID returns the identifier that goes into every payload.
func (s *Signer) ClientID() string {
	return s.clientID
}

// Sign signs url with the current time in epoch milliseconds.
func (s *Signer) Sign(url string) Result {
	return s.SignAt(url, s.clock.Now().UnixMilli())
}

// SignAt signs url for the given epoch-millisecond timestamp.
func (s *Signer) SignAt(url string, timestamp int64) Result {
	ts := strconv.FormatInt(timestamp, 10)

	return Result{
		Signature: s.digest(Payload{URL: url, TimeStamp: ts, ClientID: s.clientID}),
		TimeStamp: ts,
	}
}

// Verify checks a signature produced by the same recipe for url and timeStamp.
func (s *Signer) Verify(url, timeStamp, signature string) error {
	timestamp, err := strconv.ParseInt(timeStamp, 10, 64)
	if err != nil {
		return failure.Wrap(http.StatusUnauthorized, "invalid request timestamp", ErrMalformedTimestamp)
	}

	if s.tolerance > 0 {
		drift := s.clock.Now().Sub(time.UnixMilli(timestamp))
		if drift < 0 {
			drift = -drift
		}

		if drift > s.tolerance {
			return failure.Wrap(http.StatusUnauthorized, "request timestamp expired", ErrExpiredTimestamp)
		}
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return failure.Wrap(http.StatusUnauthorized, "invalid request signature", ErrSignatureMismatch)
	}

	want, _ := hex.DecodeString(s.digest(Payload{URL: url, TimeStamp: timeStamp, ClientID: s.clientID}))
	if !hmac.Equal(got, want) {
		return failure.Wrap(http.StatusUnauthorized, "invalid request signature", ErrSignatureMismatch)
	}

	return nil
}

func (s *Signer) digest(p Payload) string {
	mac := hmac.New(sha256.New, s.secretKey)
	_, _ = mac.Write(Marshal(p))

	return hex.EncodeToString(mac.Sum(nil))
}
