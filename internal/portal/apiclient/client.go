// Package apiclient is the typed HTTP client for the absence and
// org-hierarchy APIs. It holds a bearer credential handed to it at
// construction; obtaining or refreshing that credential is the session
// layer's job, never this package's.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/domain/user"
)

// ErrUnauthorized marks a 401-class failure. Callers hand it to the
// cross-cutting session layer; nothing in the portal core acts on it.
var ErrUnauthorized = errors.New("unauthorized")

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

// CreateSubmission is one absence ready to post: submission-shifted dates,
// the chosen type, and an optional evidence document.
type CreateSubmission struct {
	StartDate    string
	EndDate      string
	Type         absence.Type
	Document     io.Reader
	DocumentName string
}

func (c *Client) ListOwn(ctx context.Context) ([]absence.RecordResponse, error) {
	var records []absence.RecordResponse
	if err := c.getJSON(ctx, "/api/v1/absences/current-user", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ListForUser(ctx context.Context, email string) ([]absence.RecordResponse, error) {
	var records []absence.RecordResponse
	if err := c.getJSON(ctx, "/api/v1/absences/user/"+url.PathEscape(email), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Subordinates(ctx context.Context) ([]user.Subordinate, error) {
	var subordinates []user.Subordinate
	if err := c.getJSON(ctx, "/api/v1/users/subordinates", &subordinates); err != nil {
		return nil, err
	}
	return subordinates, nil
}

func (c *Client) Create(ctx context.Context, sub CreateSubmission) (absence.RecordResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"startDate": sub.StartDate,
		"endDate":   sub.EndDate,
		"type":      string(sub.Type),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return absence.RecordResponse{}, fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	if sub.Document != nil {
		part, err := mw.CreateFormFile("document", sub.DocumentName)
		if err != nil {
			return absence.RecordResponse{}, fmt.Errorf("create document part: %w", err)
		}
		if _, err := io.Copy(part, sub.Document); err != nil {
			return absence.RecordResponse{}, fmt.Errorf("copy document: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return absence.RecordResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/absences/", &body)
	if err != nil {
		return absence.RecordResponse{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var created absence.RecordResponse
	if err := c.do(req, &created); err != nil {
		return absence.RecordResponse{}, err
	}
	return created, nil
}

func (c *Client) Approve(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/absences/approve/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/v1/absences/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Document fetches the evidence file for a record. The returned name is
// what the save action should label the file; the caller owns the reader.
func (c *Client) Document(ctx context.Context, id string) (name string, content io.ReadCloser, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/absences/document/"+url.PathEscape(id), nil)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return "", nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return "", nil, fmt.Errorf("document fetch failed: %s", resp.Status)
	}

	name = fmt.Sprintf("document_%s.pdf", id)
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			name = params["filename"]
		}
	}
	return name, resp.Body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do sends the request with the bearer credential and decodes the envelope
// into out. A non-2xx status or an unsuccessful envelope is an error.
func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		if env.Error != nil {
			return fmt.Errorf("%s: %s", env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
