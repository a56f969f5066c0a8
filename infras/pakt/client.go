package pakt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pakt/config"
	"pakt/infras/otel"
	"pakt/shared/constant"
	"pakt/shared/failure"
	"pakt/shared/signature"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const otelScopeName = constant.OtelExternalScopeName + ".pakt"

// Client talks to the backend API. Every request carries the signature headers
// X-Signature, X-Timestamp and X-Client-Id.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	signer     *signature.Signer
	otel       otel.Otel

	Testnet bool
	Verbose bool
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func New(cfg *config.Config, signer *signature.Signer, ot otel.Otel) *Client {
	baseURL, err := url.Parse(strings.TrimRight(cfg.APIURL(), "/"))
	if err != nil {
		log.Fatal().Err(err).Str("url", cfg.APIURL()).Msg("Invalid backend API url")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		},
		signer:  signer,
		otel:    ot,
		Testnet: !cfg.IsProduction(),
		Verbose: cfg.API.Verbose,
	}
}

// BaseURL returns the backend root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Do sends a JSON request to path (which may carry a query) and decodes a JSON
// response into out when out is not nil. Non-2xx responses become failures carrying
// the upstream status.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Do")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target, err := c.resolve(path)
	if err != nil {
		return failure.BadRequest(err)
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		payload = bytes.NewReader(raw)
	}

	request, err := http.NewRequestWithContext(ctx, method, target.String(), payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	c.sign(request)

	scope.SetAttributes(map[string]any{
		"http.method":  method,
		"http.url":     target.String(),
		"pakt.testnet": c.Testnet,
	})

	started := time.Now()

	resp, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", target.String()).Msg("backend request failed")

		return failure.ServiceUnavailable(fmt.Errorf("backend request failed: %w", err))
	}
	defer resp.Body.Close()

	scope.SetAttribute("http.status_code", resp.StatusCode)

	if c.Verbose {
		log.Info().
			Str("method", method).
			Str("url", target.String()).
			Int("status", resp.StatusCode).
			Dur("elapsed", time.Since(started)).
			Msg("backend request")
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return failure.FromStatus(resp.StatusCode, upstreamMessage(raw))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	return nil
}

func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid backend path %q: %w", path, err)
	}

	if ref.IsAbs() {
		return nil, fmt.Errorf("backend path %q must be relative", path)
	}

	target := *c.baseURL
	target.Path = c.baseURL.Path + "/" + strings.TrimLeft(ref.Path, "/")
	target.RawQuery = ref.RawQuery

	return &target, nil
}

// sign attaches the signature of the request URI, the same value the receiving
// middleware recomputes.
func (c *Client) sign(request *http.Request) {
	result := c.signer.Sign(request.URL.RequestURI())

	request.Header.Set(constant.RequestHeaderSignature, result.Signature)
	request.Header.Set(constant.RequestHeaderTimestamp, result.TimeStamp)
	request.Header.Set(constant.RequestHeaderClientID, c.signer.ClientID())
	request.Header.Set(constant.RequestHeaderTestnet, strconv.FormatBool(c.Testnet))
	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if request.Body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}
}

func upstreamMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}

	if body.Message != "" {
		return body.Message
	}

	return body.Error
}
