package signature_test

import (
	"errors"
	"net/http"
	"pakt/config"
	"pakt/shared/clock"
	"pakt/shared/failure"
	"pakt/shared/signature"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.UnixMilli(1705314600000)

func newSigner(opts ...signature.Option) *signature.Signer {
	opts = append([]signature.Option{signature.WithClock(clock.NewFixed(fixedNow))}, opts...)

	return signature.New(signature.Config{SecretKey: "secret", ClientID: "client-1"}, opts...)
}

func TestSigner_Sign_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		cfg      signature.Config
		url      string
		expected string
	}{
		{
			name:     "path with query",
			cfg:      signature.Config{SecretKey: "secret", ClientID: "client-1"},
			url:      "/v1/users?page=1",
			expected: "8520a860bbf1cdf376069b31e46bb9922d8a7b8134eb0cedc91966f557f4e11c",
		},
		{
			name:     "html characters and non ascii stay literal",
			cfg:      signature.Config{SecretKey: "secret", ClientID: "client-1"},
			url:      "https://api.example.com/a?b=<c>&d=é",
			expected: "920b462f01ffe4b7e6307cefed81ea07f53a2956086f13f28737877d76983dfa",
		},
		{
			name:     "missing configuration falls back to undefined",
			cfg:      signature.Config{},
			url:      "/v1/users?page=1",
			expected: "c5622173f7ddd57e981d5eb89cb3b4b37bcbfef093790d7038677c6b64c00e69",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := signature.New(tt.cfg, signature.WithClock(clock.NewFixed(fixedNow)))

			result := s.Sign(tt.url)

			assert.Equal(t, tt.expected, result.Signature)
			assert.Equal(t, "1705314600000", result.TimeStamp)
		})
	}
}

func TestSigner_Sign_Deterministic(t *testing.T) {
	s := newSigner()

	first := s.Sign("/v1/pakts")
	second := s.Sign("/v1/pakts")

	assert.Equal(t, first, second)
	assert.Len(t, first.Signature, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", first.Signature)
}

func TestSigner_Sign_FieldSensitivity(t *testing.T) {
	base := newSigner().SignAt("/v1/pakts", 1705314600000)

	tests := []struct {
		name   string
		result signature.Result
	}{
		{
			name:   "different url",
			result: newSigner().SignAt("/v1/pakts/1", 1705314600000),
		},
		{
			name:   "different timestamp",
			result: newSigner().SignAt("/v1/pakts", 1705314600001),
		},
		{
			name: "different client id",
			result: signature.New(signature.Config{SecretKey: "secret", ClientID: "client-2"}).
				SignAt("/v1/pakts", 1705314600000),
		},
		{
			name: "different secret",
			result: signature.New(signature.Config{SecretKey: "secret2", ClientID: "client-1"}).
				SignAt("/v1/pakts", 1705314600000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base.Signature, tt.result.Signature)
		})
	}
}

func TestSigner_Sign_TimestampWithinCall(t *testing.T) {
	s := signature.New(signature.Config{SecretKey: "secret", ClientID: "client-1"})

	before := time.Now().UnixMilli()
	result := s.Sign("/v1/pakts")
	after := time.Now().UnixMilli()

	ts, err := strconv.ParseInt(result.TimeStamp, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)
}

func TestSigner_Verify(t *testing.T) {
	now := clock.NewFixed(fixedNow)
	s := signature.New(signature.Config{SecretKey: "secret", ClientID: "client-1"},
		signature.WithClock(now),
		signature.WithTolerance(5*time.Minute),
	)

	valid := s.Sign("/v1/timezone")

	tests := []struct {
		name      string
		url       string
		timeStamp string
		signature string
		wantErr   error
	}{
		{
			name:      "valid signature",
			url:       "/v1/timezone",
			timeStamp: valid.TimeStamp,
			signature: valid.Signature,
		},
		{
			name:      "tampered url",
			url:       "/v1/timezone?x=1",
			timeStamp: valid.TimeStamp,
			signature: valid.Signature,
			wantErr:   signature.ErrSignatureMismatch,
		},
		{
			name:      "non hex signature",
			url:       "/v1/timezone",
			timeStamp: valid.TimeStamp,
			signature: "not-hex",
			wantErr:   signature.ErrSignatureMismatch,
		},
		{
			name:      "malformed timestamp",
			url:       "/v1/timezone",
			timeStamp: "yesterday",
			signature: valid.Signature,
			wantErr:   signature.ErrMalformedTimestamp,
		},
		{
			name:      "timestamp too old",
			url:       "/v1/timezone",
			timeStamp: strconv.FormatInt(fixedNow.Add(-10*time.Minute).UnixMilli(), 10),
			signature: valid.Signature,
			wantErr:   signature.ErrExpiredTimestamp,
		},
		{
			name:      "timestamp too far in the future",
			url:       "/v1/timezone",
			timeStamp: strconv.FormatInt(fixedNow.Add(10*time.Minute).UnixMilli(), 10),
			signature: valid.Signature,
			wantErr:   signature.ErrExpiredTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Verify(tt.url, tt.timeStamp, tt.signature)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		})
	}
}

func TestSigner_Verify_ToleranceDisabled(t *testing.T) {
	s := newSigner()

	old := s.SignAt("/v1/timezone", fixedNow.Add(-48*time.Hour).UnixMilli())

	assert.NoError(t, s.Verify("/v1/timezone", old.TimeStamp, old.Signature))
}

func TestProvide(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.Key = "secret"
	cfg.API.ID = "client-1"
	cfg.App.Signature.ToleranceSeconds = 60

	now := clock.NewFixed(fixedNow)
	s := signature.Provide(cfg, now)

	assert.Equal(t, "client-1", s.ClientID())

	result := s.Sign("/v1/users?page=1")
	assert.Equal(t, "8520a860bbf1cdf376069b31e46bb9922d8a7b8134eb0cedc91966f557f4e11c", result.Signature)

	now.Add(2 * time.Minute)

	err := s.Verify("/v1/users?page=1", result.TimeStamp, result.Signature)
	assert.True(t, errors.Is(err, signature.ErrExpiredTimestamp))
}
