// Package api implements the authenticated request gateway: every call to
// the account API goes through here, which attaches the current access
// credential (when a session exists) and maps responses onto a small error
// taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

// responses are small JSON documents; anything bigger is not ours
const maxResponseBytes = 1 << 20

// Caller is the request surface the flow services operate on. The real
// Gateway satisfies it; tests can provide a fake.
type Caller interface {
	// Call issues a JSON request to the configured API base. A nil body
	// sends no payload; a non-nil out receives the decoded 2xx response.
	Call(ctx context.Context, method, path string, body any, out any) error

	// CallMultipart issues a multipart/form-data request with the given
	// fields and one attached file.
	CallMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, filePath string, out any) error
}

// Gateway calls the account API over HTTP. If the session store holds a
// session, the access credential is attached as a bearer authorization
// value; otherwise the call goes out unauthenticated.
type Gateway struct {
	baseURL  string
	httpc    *http.Client
	sessions *session.Store
	log      logging.Logger
}

func NewGateway(baseURL string, timeout time.Duration, sessions *session.Store, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log.With("component", "gateway"),
	}
}

func (g *Gateway) Call(ctx context.Context, method, path string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return g.do(req, out)
}

func (g *Gateway) CallMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, filePath string, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return fmt.Errorf("encode field %s: %w", key, err)
		}
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return g.do(req, out)
}

func (g *Gateway) do(req *http.Request, out any) error {
	ctx := req.Context()

	req.Header.Set("X-Request-Id", uuid.NewString())
	if s, err := g.sessions.Load(ctx); err == nil && s.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	g.log.Debug(ctx, "request done", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	default:
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}
}

// serverMessage pulls a human-readable message out of an error response
// body. The API answers with {"message": ...}, {"error": ...} or
// {"detail": ...} depending on the endpoint, and with per-field string
// lists for validation failures.
func serverMessage(data []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := payload[key].(string); ok && v != "" {
				return v
			}
		}

		fields := make([]string, 0, len(payload))
		for field := range payload {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			if list, ok := payload[field].([]any); ok && len(list) > 0 {
				if s, ok := list[0].(string); ok && s != "" {
					return fmt.Sprintf("%s: %s", field, s)
				}
			}
		}
	}
	return "request failed"
}
