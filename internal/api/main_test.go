package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testInputLimit = 100

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(zerolog.Nop(), testInputLimit)
}

func newLoggedTestServer(t *testing.T, buf *bytes.Buffer) *Server {
	t.Helper()
	return New(zerolog.New(buf), testInputLimit)
}

func inspectURL(input string) string {
	return "/?" + url.Values{"url": {input}}.Encode()
}

func serve(t *testing.T, server http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	return recorder
}

func requireErrorBody(t *testing.T, recorder *httptest.ResponseRecorder, message string) {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Equal(t, message, resp.Error)
}

// logLines decodes every JSON log line written to buf
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(raw) == 0 {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}
	return lines
}
