package services

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faizan-Cheema/popstream/internal/client/session"
	"github.com/Faizan-Cheema/popstream/internal/logging"
)

// fakeCaller implements api.Caller for unit tests of the flow services.
type fakeCaller struct {
	CallErr error
	CallOut string // JSON decoded into out when non-empty

	MultipartErr error
	MultipartOut string

	Calls          int
	MultipartCalls int

	LastMethod string
	LastPath   string
	LastBody   any

	LastFields    map[string]string
	LastFileField string
	LastFilePath  string
}

func (f *fakeCaller) Call(ctx context.Context, method, path string, body any, out any) error {
	f.Calls++
	f.LastMethod, f.LastPath, f.LastBody = method, path, body
	if f.CallErr != nil {
		return f.CallErr
	}
	if out != nil && f.CallOut != "" {
		return json.Unmarshal([]byte(f.CallOut), out)
	}
	return nil
}

func (f *fakeCaller) CallMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, filePath string, out any) error {
	f.MultipartCalls++
	f.LastMethod, f.LastPath = method, path
	f.LastFields, f.LastFileField, f.LastFilePath = fields, fileField, filePath
	if f.MultipartErr != nil {
		return f.MultipartErr
	}
	if out != nil && f.MultipartOut != "" {
		return json.Unmarshal([]byte(f.MultipartOut), out)
	}
	return nil
}

func newTestStore() *session.Store {
	return session.NewStore(session.NewMemoryBackend(), session.NewMemoryBackend())
}

func testLogger() logging.Logger {
	return logging.New(io.Discard, "error")
}

func requireSignedOut(t *testing.T, st *session.Store) {
	t.Helper()
	_, err := st.Load(context.Background())
	require.ErrorIs(t, err, session.ErrNoSession)
}

func bodyField(t *testing.T, body any, key string) (string, bool) {
	t.Helper()
	m, ok := body.(map[string]string)
	require.True(t, ok, "request body must be a map[string]string")
	v, ok := m[key]
	return v, ok
}
