package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/cristianoliveira/peekshell/internal/paths"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const testToken = "test-token-12345"

type recordingWindow struct {
	calls []bool
	err   error
}

func (w *recordingWindow) SetIgnoreCursorEvents(ignore bool) error {
	w.calls = append(w.calls, ignore)
	return w.err
}

func setupHandler(t *testing.T, token string, window state.WindowHost) (http.Handler, *state.Manager, paths.Paths) {
	t.Helper()
	p := paths.Resolve(t.TempDir(), "", "")
	m := state.New(state.Options{Paths: p, WindowHost: window})
	t.Cleanup(func() { _ = m.Close() })
	return NewHandler(Deps{State: m, Token: token}), m, p
}

func authReq(method, url, body, token string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Error
}

func TestAuthRequired(t *testing.T) {
	h, _, _ := setupHandler(t, testToken, nil)

	for _, token := range []string{"", "wrong"} {
		rr := serve(h, authReq(http.MethodGet, "/status", "", token))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, kindUnauthorized, decodeError(t, rr).Kind)
	}

	rr := serve(h, authReq(http.MethodGet, "/status", "", testToken))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNoTokenDisablesAuth(t *testing.T) {
	h, _, _ := setupHandler(t, "", nil)

	rr := serve(h, authReq(http.MethodGet, "/status", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetSettingsDefault(t *testing.T) {
	h, _, p := setupHandler(t, testToken, nil)

	rr := serve(h, authReq(http.MethodGet, "/settings", "", testToken))
	require.Equal(t, http.StatusOK, rr.Code)

	var got settings.Settings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, *settings.DefaultSettings(), got)
	assert.NoFileExists(t, p.SettingsFile())
}

func TestPutSettingsRoundTrip(t *testing.T) {
	h, m, _ := setupHandler(t, testToken, nil)

	body := `{"lang":"en","showAddress":false,"showTabs":true,"onTop":false,"rememberSession":true,` +
		`"borderPx":7,"ribbon":{"enabled":true,"width":300,"height":60},"hud":false,"snap":false,"bookmarks":[]}`
	rr := serve(h, authReq(http.MethodPut, "/settings", body, testToken))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	s, err := m.Settings()
	require.NoError(t, err)
	assert.Equal(t, "en", s.Lang)
	assert.False(t, s.ShowAddress)
	assert.True(t, s.ShowTabs)
	assert.Equal(t, uint8(7), s.BorderPx)
	assert.Equal(t, settings.Ribbon{Enabled: true, Width: 300, Height: 60}, s.Ribbon)
	assert.Empty(t, s.Bookmarks)
}

func TestPutSettingsRejectsIncompleteBody(t *testing.T) {
	h, _, p := setupHandler(t, testToken, nil)

	for _, body := range []string{`{"lang":"en"}`, `{}`, `null`, `not json`} {
		rr := serve(h, authReq(http.MethodPut, "/settings", body, testToken))
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, "invalid", decodeError(t, rr).Kind, body)
	}
	assert.NoFileExists(t, p.SettingsFile())

	full, err := json.Marshal(settings.DefaultSettings())
	require.NoError(t, err)
	rr := serve(h, authReq(http.MethodPut, "/settings", strings.Replace(string(full), `"borderPx":3`, `"borderPx":300`, 1), testToken))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NoFileExists(t, p.SettingsFile())
}

func TestPutSettingsStoresValuesVerbatim(t *testing.T) {
	h, m, _ := setupHandler(t, testToken, nil)

	s := settings.DefaultSettings()
	s.Lang = ""
	s.Ribbon.Width = -5
	body, err := json.Marshal(s)
	require.NoError(t, err)

	rr := serve(h, authReq(http.MethodPut, "/settings", string(body), testToken))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got, err := m.Settings()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestCorruptSettingsKeepsKind(t *testing.T) {
	h, _, p := setupHandler(t, testToken, nil)
	require.NoError(t, os.MkdirAll(p.DataDir, 0o755))
	require.NoError(t, os.WriteFile(p.SettingsFile(), []byte("{broken"), 0o644))

	rr := serve(h, authReq(http.MethodGet, "/settings", "", testToken))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	detail := decodeError(t, rr)
	assert.Equal(t, "deserialize", detail.Kind)
	assert.Contains(t, detail.Message, "settings.json")
}

func TestResetSettings(t *testing.T) {
	h, m, _ := setupHandler(t, testToken, nil)
	s := settings.DefaultSettings()
	s.Lang = "en"
	require.NoError(t, m.SetSettings(s))

	rr := serve(h, authReq(http.MethodPost, "/settings/reset", "", testToken))
	require.Equal(t, http.StatusOK, rr.Code)

	got, err := m.Settings()
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultSettings(), got)
}

func TestHistoryLifecycle(t *testing.T) {
	h, _, _ := setupHandler(t, testToken, nil)

	for i := 0; i < 3; i++ {
		rr := serve(h, authReq(http.MethodPost, "/history", fmt.Sprintf(`{"url":"https://e.example/%d"}`, i), testToken))
		require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())
	}

	rr := serve(h, authReq(http.MethodGet, "/history", "", testToken))
	require.Equal(t, http.StatusOK, rr.Code)
	var list []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []string{"https://e.example/0", "https://e.example/1", "https://e.example/2"}, list)

	rr = serve(h, authReq(http.MethodGet, "/history?limit=2", "", testToken))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []string{"https://e.example/1", "https://e.example/2"}, list)

	rr = serve(h, authReq(http.MethodGet, "/history?limit=-1", "", testToken))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(h, authReq(http.MethodDelete, "/history", "", testToken))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(h, authReq(http.MethodGet, "/history", "", testToken))
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAppendHistoryEmptyURL(t *testing.T) {
	h, _, _ := setupHandler(t, testToken, nil)

	rr := serve(h, authReq(http.MethodPost, "/history", `{"url":"  "}`, testToken))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid", decodeError(t, rr).Kind)
}

func TestConcurrentAppendsAreNotLost(t *testing.T) {
	h, m, _ := setupHandler(t, "", nil)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	var g errgroup.Group
	for i := 0; i < 25; i++ {
		g.Go(func() error {
			resp, err := http.Post(srv.URL+"/history", "application/json",
				strings.NewReader(fmt.Sprintf(`{"url":"https://c.example/%d"}`, i)))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusNoContent {
				return fmt.Errorf("status %d", resp.StatusCode)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	list, err := m.History()
	require.NoError(t, err)
	assert.Len(t, list, 25)
}

func TestLastURLAndEvent(t *testing.T) {
	h, _, _ := setupHandler(t, testToken, nil)

	rr := serve(h, authReq(http.MethodGet, "/last-url", "", testToken))
	assert.JSONEq(t, `{"url":""}`, rr.Body.String())

	rr = serve(h, authReq(http.MethodPost, "/events/url-changed", `{"url":"https://last.example"}`, testToken))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(h, authReq(http.MethodGet, "/last-url", "", testToken))
	assert.JSONEq(t, `{"url":"https://last.example"}`, rr.Body.String())
}

func TestCycleOpacity(t *testing.T) {
	h, _, _ := setupHandler(t, testToken, nil)

	var got []float64
	for i := 0; i < 5; i++ {
		rr := serve(h, authReq(http.MethodPost, "/opacity/cycle", "", testToken))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp opacityResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		got = append(got, resp.Opacity)
	}
	assert.Equal(t, []float64{0.9, 0.8, 0.7, 0.6, 1.0}, got)
}

func TestIgnoreCursorWithoutWindow(t *testing.T) {
	h, _, _ := setupHandler(t, testToken, nil)

	rr := serve(h, authReq(http.MethodPost, "/window/ignore-cursor", `{"ignore":true}`, testToken))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "unavailable", decodeError(t, rr).Kind)
}

func TestIgnoreCursorWithWindow(t *testing.T) {
	window := &recordingWindow{}
	h, _, _ := setupHandler(t, testToken, window)

	rr := serve(h, authReq(http.MethodPost, "/window/ignore-cursor", `{"ignore":true}`, testToken))
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, []bool{true}, window.calls)

	window.err = errors.New("window gone")
	rr = serve(h, authReq(http.MethodPost, "/window/ignore-cursor", `{"ignore":false}`, testToken))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, decodeError(t, rr).Message, "window gone")
}

func TestClearCache(t *testing.T) {
	h, _, p := setupHandler(t, testToken, nil)
	require.NoError(t, os.MkdirAll(p.CacheDir(), 0o755))

	rr := serve(h, authReq(http.MethodPost, "/cache/clear", "", testToken))
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.NoDirExists(t, p.CacheDir())
	assert.DirExists(t, p.ProfileDir)

	rr = serve(h, authReq(http.MethodPost, "/cache/clear", `{"hard":true}`, testToken))
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.NoDirExists(t, p.ProfileDir)
}

func TestStatus(t *testing.T) {
	h, m, p := setupHandler(t, testToken, nil)
	require.NoError(t, m.AppendHistory("https://s.example"))

	rr := serve(h, authReq(http.MethodGet, "/status", "", testToken))
	require.Equal(t, http.StatusOK, rr.Code)

	var st state.Status
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
	assert.Equal(t, m.SessionID(), st.SessionID)
	assert.Equal(t, p.DataDir, st.DataDir)
	assert.Equal(t, 1, st.HistoryLength)
	assert.Equal(t, "json", st.HistoryBackend)
	assert.Equal(t, 1.0, st.Opacity)
}

func TestUnknownRoute(t *testing.T) {
	h, _, _ := setupHandler(t, testToken, nil)

	rr := serve(h, authReq(http.MethodGet, "/nope", "", testToken))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
