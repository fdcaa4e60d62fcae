package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
	"github.com/NicholaCharlton/AltTeX-Personal/internal/config"
)

func newTestServer(t *testing.T, modify ...func(*config.Config)) (*Server, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	for _, m := range modify {
		m(&cfg)
	}

	logs := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(logs, nil))

	return NewServer(alttex.New(), log, cfg), logs
}

func post(t *testing.T, srv http.Handler, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestEquation(t *testing.T) {
	srv, logs := newTestServer(t)

	rec := post(t, srv, "/v1/equation", "application/json", strings.NewReader(`{"payload":"x^2 + \\foo"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp altTextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "x superscript 2 + foo", resp.AltText)
	assert.Equal(t, alttex.Annotate(resp.AltText), resp.Annotation)
	assert.Equal(t, []string{"foo"}, resp.UnknownCommands)
	assert.Contains(t, logs.String(), "command not in symbol table")
	assert.Contains(t, logs.String(), `"path":"/v1/equation"`)
}

func TestEquationBadRequest(t *testing.T) {
	srv, _ := newTestServer(t)

	tt := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"payload":`},
		{name: "empty payload", body: `{"payload":"  "}`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, srv, "/v1/equation", "application/json", strings.NewReader(tc.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestTable(t *testing.T) {
	srv, _ := newTestServer(t)

	body, err := json.Marshal(tableRequest{Body: `{|c|c|}\hline a & b \\ \hline c & d \\ \hline`})
	require.NoError(t, err)

	rec := post(t, srv, "/v1/table", "application/json", bytes.NewReader(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp altTextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Table with 2 columns and 2 rows. a and b next row c and d", resp.AltText)
	assert.Empty(t, resp.UnknownCommands)
}

func TestDocument(t *testing.T) {
	doc := "\\documentclass{article}\n\\begin{document}\n$\\hat{x}$ and $\\qux$\n\\end{document}\n"

	tt := []struct {
		name    string
		query   string
		include bool
		want    bool
	}{
		{name: "configured default", include: true, want: true},
		{name: "disabled by query", query: "?package=false", include: true, want: false},
		{name: "enabled by query", query: "?package=1", include: false, want: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newTestServer(t, func(c *config.Config) { c.IncludePackage = tc.include })

			rec := post(t, srv, "/v1/document"+tc.query, "application/x-latex", strings.NewReader(doc))
			require.Equal(t, http.StatusOK, rec.Code)

			out := rec.Body.String()
			assert.Equal(t, tc.want, strings.Contains(out, "{todonotes}"))
			assert.Contains(t, out, alttex.Annotate("x hat"))
			assert.Contains(t, out, alttex.Annotate("qux"))
			assert.Equal(t, "qux", rec.Header().Get("X-Alttex-Unknown"))
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/x-latex")
		})
	}
}

func TestDocumentFragment(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := post(t, srv, "/v1/document", "text/plain", strings.NewReader("just $y$"))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "just $y$"+alttex.Annotate("y"), rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Alttex-Unknown"))
}

func TestDocumentTooLarge(t *testing.T) {
	srv, _ := newTestServer(t, func(c *config.Config) { c.MaxBodyBytes = 16 })

	rec := post(t, srv, "/v1/document", "application/x-latex", strings.NewReader(strings.Repeat("$x$ ", 64)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestJSONTooLarge(t *testing.T) {
	srv, _ := newTestServer(t, func(c *config.Config) { c.MaxBodyBytes = 16 })

	tt := []struct {
		path string
		body string
	}{
		{path: "/v1/equation", body: `{"payload":"` + strings.Repeat("x+", 32) + `x"}`},
		{path: "/v1/table", body: `{"body":"` + strings.Repeat("a & b \\\\ ", 8) + `"}`},
	}

	for _, tc := range tt {
		t.Run(tc.path, func(t *testing.T) {
			rec := post(t, srv, tc.path, "application/json", strings.NewReader(tc.body))
			assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
			assert.Contains(t, rec.Body.String(), "too large")
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/equation", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
