// Package twitter implements the posting capability against the Twitter/X
// API: v1.1 media upload, v2 tweet creation, OAuth1 user-context signing.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/oauth1"

	"finaltabs/internal/publish"
)

const (
	defaultUploadURL   = "https://upload.twitter.com/1.1/media/upload.json"
	defaultTweetURL    = "https://api.twitter.com/2/tweets"
	defaultHTTPTimeout = 30 * time.Second
)

// Credentials are the four user-context OAuth1 strings.
type Credentials struct {
	AppKey       string
	AppSecret    string
	AccessToken  string
	AccessSecret string
}

// Config controls how the client reaches the API. A non-nil HTTPClient
// bypasses OAuth signing (tests).
type Config struct {
	Credentials Credentials
	UploadURL   string
	TweetURL    string
	HTTPClient  *http.Client
}

// Client posts image tweets. It satisfies publish.Poster.
type Client struct {
	http      *http.Client
	uploadURL string
	tweetURL  string
}

// NewClient constructs a client with OAuth1-signed transport.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		oauthCfg := oauth1.NewConfig(cfg.Credentials.AppKey, cfg.Credentials.AppSecret)
		token := oauth1.NewToken(cfg.Credentials.AccessToken, cfg.Credentials.AccessSecret)
		httpClient = oauthCfg.Client(oauth1.NoContext, token)
		httpClient.Timeout = defaultHTTPTimeout
	}
	return &Client{
		http:      httpClient,
		uploadURL: defaulted(cfg.UploadURL, defaultUploadURL),
		tweetURL:  defaulted(cfg.TweetURL, defaultTweetURL),
	}
}

type uploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

// UploadMedia uploads PNG bytes and returns the media id to attach.
func (c *Client) UploadMedia(ctx context.Context, image []byte) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("media", "receipt.png")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(image); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apiError(resp)
	}

	var payload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if payload.MediaIDString == "" {
		return "", fmt.Errorf("upload response missing media id")
	}
	return payload.MediaIDString, nil
}

type tweetRequest struct {
	Text  string     `json:"text"`
	Media tweetMedia `json:"media"`
}

type tweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

// Publish creates the tweet with the uploaded media attached.
func (c *Client) Publish(ctx context.Context, text string, mediaRef string) error {
	payload, err := json.Marshal(tweetRequest{
		Text:  text,
		Media: tweetMedia{MediaIDs: []string{mediaRef}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tweetURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	return nil
}

// errorBody covers both the v1.1 error list and the v2 problem shape.
type errorBody struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Title  string `json:"title"`
}

func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	apiErr := &publish.APIError{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if len(body.Errors) > 0 {
			apiErr.Code = body.Errors[0].Code
			apiErr.Message = body.Errors[0].Message
		}
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(strings.Join([]string{body.Title, body.Detail}, " "))
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

func defaulted(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
