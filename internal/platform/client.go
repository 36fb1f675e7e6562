package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	BaseURLDefault     = "https://four.meme/meme-api/v1"
	NetworkCodeDefault = "BSC"
	TimeoutDefault     = 30 * time.Second

	// AccessHeader carries the session token on authenticated calls.
	AccessHeader = "meme-web-access"

	endpointNonce  = "private/user/nonce/generate"
	endpointLogin  = "private/user/login/dex"
	endpointUpload = "private/token/upload"
	endpointCreate = "private/token/create"

	verifyTypeLogin = "LOGIN"
	loginMessage    = "You are sign in Meme %s"

	maxErrorBodyLen = 2048
)

var (
	ErrFailedToCreateRequest    = errors.New("failed to create request")
	ErrRequestFailed            = errors.New("request to platform failed")
	ErrRemoteCallFailed         = errors.New("platform returned an error response")
	ErrFailedToDecodeResponse   = errors.New("failed to decode response")
	ErrUnexpectedResponseShape  = errors.New("unexpected response shape")
	ErrMissingAccessToken       = errors.New("access token missing")
	ErrValidateURLNotConfigured = errors.New("validate url not configured")
)

// ResponseError is returned for a non-2xx status or a non-zero envelope code.
// Body holds the raw response, truncated, for diagnostics.
type ResponseError struct {
	Endpoint   string
	StatusCode int
	Code       string
	Body       string
}

func (e *ResponseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: status %d, code %s: %s", e.Endpoint, e.StatusCode, e.Code, e.Body)
	}

	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *ResponseError) Unwrap() error {
	return ErrRemoteCallFailed
}

type Client struct {
	client      http.Client
	logger      *slog.Logger
	url         string
	validateURL string
	networkCode string
}

func WithLogger(logger *slog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithURL(url string) func(*Client) {
	return func(c *Client) {
		if url != "" {
			c.url = strings.TrimRight(url, "/")
		}
	}
}

// WithValidateURL enables the best-effort login validation call against the given URL.
func WithValidateURL(url string) func(*Client) {
	return func(c *Client) {
		c.validateURL = url
	}
}

func WithTimeout(timeout time.Duration) func(*Client) {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

func WithNetworkCode(code string) func(*Client) {
	return func(c *Client) {
		if code != "" {
			c.networkCode = code
		}
	}
}

func New(opts ...func(*Client)) *Client {
	c := &Client{
		client:      http.Client{Timeout: TimeoutDefault},
		logger:      slog.Default(),
		url:         BaseURLDefault,
		networkCode: NetworkCodeDefault,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With(slog.String("module", "platform-client"))

	return c
}

// LoginMessage is the text signed with the account key to exchange a nonce for a session.
func LoginMessage(nonce string) string {
	return fmt.Sprintf(loginMessage, nonce)
}

type nonceRequest struct {
	AccountAddress string `json:"accountAddress"`
	VerifyType     string `json:"verifyType"`
	NetworkCode    string `json:"networkCode"`
}

type verifyInfo struct {
	Address     string `json:"address"`
	NetworkCode string `json:"networkCode"`
	Signature   string `json:"signature"`
	VerifyType  string `json:"verifyType"`
}

type loginRequest struct {
	Region     string     `json:"region"`
	LangType   string     `json:"langType"`
	LoginIP    string     `json:"loginIp"`
	InviteCode string     `json:"inviteCode"`
	VerifyInfo verifyInfo `json:"verifyInfo"`
	WalletName string     `json:"walletName"`
}

type validateRequest struct {
	AccountAddress string `json:"accountAddress"`
	NetworkCode    string `json:"networkCode"`
}

// GenerateNonce requests a one-time login nonce for the address.
func (c *Client) GenerateNonce(ctx context.Context, address string) (string, error) {
	data, err := c.postJSON(ctx, endpointNonce, c.endpointURL(endpointNonce), nonceRequest{
		AccountAddress: address,
		VerifyType:     verifyTypeLogin,
		NetworkCode:    c.networkCode,
	}, "")
	if err != nil {
		return "", err
	}

	return decodeString(endpointNonce, data)
}

// Login exchanges a signed login message for an access token.
func (c *Client) Login(ctx context.Context, address string, signature string) (string, error) {
	data, err := c.postJSON(ctx, endpointLogin, c.endpointURL(endpointLogin), loginRequest{
		Region:   "WEB",
		LangType: "EN",
		VerifyInfo: verifyInfo{
			Address:     address,
			NetworkCode: c.networkCode,
			Signature:   signature,
			VerifyType:  verifyTypeLogin,
		},
		WalletName: "MetaMask",
	}, "")
	if err != nil {
		return "", err
	}

	return decodeString(endpointLogin, data)
}

// ValidateLogin reports a fresh session to the configured validation endpoint.
// Only the account address and the session token leave the process.
func (c *Client) ValidateLogin(ctx context.Context, address string, accessToken string) error {
	if c.validateURL == "" {
		return ErrValidateURLNotConfigured
	}

	_, err := c.postJSON(ctx, "validate", c.validateURL, validateRequest{
		AccountAddress: address,
		NetworkCode:    c.networkCode,
	}, accessToken)

	return err
}

// UploadImage sends the image as multipart form field "file" and returns the hosted image URL.
func (c *Client) UploadImage(ctx context.Context, accessToken string, filename string, image io.Reader) (string, error) {
	if accessToken == "" {
		return "", ErrMissingAccessToken
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Join(ErrFailedToCreateRequest, err)
	}

	_, err = io.Copy(part, image)
	if err != nil {
		return "", errors.Join(ErrFailedToCreateRequest, fmt.Errorf("failed to read image %s: %w", filename, err))
	}

	err = form.Close()
	if err != nil {
		return "", errors.Join(ErrFailedToCreateRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpointUpload), body)
	if err != nil {
		return "", errors.Join(ErrFailedToCreateRequest, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set(AccessHeader, accessToken)

	data, err := c.do(endpointUpload, req)
	if err != nil {
		return "", err
	}

	return decodeString(endpointUpload, data)
}

// PrepareCreate submits the token metadata and returns the signed creation arguments.
func (c *Client) PrepareCreate(ctx context.Context, accessToken string, payload CreateTokenPayload) (*PreparedCreate, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	data, err := c.postJSON(ctx, endpointCreate, c.endpointURL(endpointCreate), payload, accessToken)
	if err != nil {
		return nil, err
	}

	return parsePreparedCreate(data)
}

func (c *Client) endpointURL(endpoint string) string {
	return fmt.Sprintf("%s/%s", c.url, endpoint)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, url string, payload any, accessToken string) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if accessToken != "" {
		req.Header.Set(AccessHeader, accessToken)
	}

	return c.do(endpoint, req)
}

func (c *Client) do(endpoint string, req *http.Request) (json.RawMessage, error) {
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("endpoint: %s", endpoint), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrFailedToDecodeResponse, fmt.Errorf("endpoint: %s", endpoint), err)
	}

	c.logger.Debug("platform call",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.String("duration", time.Since(start).String()),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ResponseError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: truncate(raw)}
	}

	return unwrapEnvelope(endpoint, resp.StatusCode, raw)
}

func truncate(raw []byte) string {
	if len(raw) > maxErrorBodyLen {
		return string(raw[:maxErrorBodyLen]) + "..."
	}

	return string(raw)
}
