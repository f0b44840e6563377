package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cristianoliveira/peekshell/internal/jsonstore"
	"github.com/cristianoliveira/peekshell/internal/opacity"
	"github.com/cristianoliveira/peekshell/internal/paths"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestManager(t *testing.T) (*Manager, paths.Paths) {
	t.Helper()
	p := paths.Resolve(t.TempDir(), "", "")
	m := New(Options{Paths: p})
	t.Cleanup(func() { _ = m.Close() })
	return m, p
}

type fakeWindow struct {
	ignore []bool
	err    error
}

func (f *fakeWindow) SetIgnoreCursorEvents(ignore bool) error {
	f.ignore = append(f.ignore, ignore)
	return f.err
}

func TestSettingsDefaultDoesNotCreateFile(t *testing.T) {
	m, p := newTestManager(t)

	s, err := m.Settings()
	require.NoError(t, err)

	assert.Equal(t, settings.DefaultSettings(), s)
	assert.NoFileExists(t, p.SettingsFile())
	assert.NoDirExists(t, p.DataDir)
}

func TestSettingsRoundTrip(t *testing.T) {
	m, p := newTestManager(t)
	s := settings.DefaultSettings()
	s.Lang = settings.LanguageEnglish
	s.OnTop = true
	s.BorderPx = 255
	s.Ribbon = settings.Ribbon{Enabled: true, Width: 640, Height: 90}
	s.Bookmarks = []string{"https://a.example", "https://a.example"}

	require.NoError(t, m.SetSettings(s))
	assert.FileExists(t, p.SettingsFile())

	got, err := m.Settings()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSettingsIncompleteFileIsDeserializeError(t *testing.T) {
	for _, doc := range []string{`{"lang":"en","onTop":true,"extra":1}`, `{}`, `null`} {
		t.Run(doc, func(t *testing.T) {
			m, p := newTestManager(t)
			require.NoError(t, os.MkdirAll(p.DataDir, 0o755))
			require.NoError(t, os.WriteFile(p.SettingsFile(), []byte(doc), 0o644))

			_, err := m.Settings()
			require.Error(t, err)
			assert.True(t, jsonstore.IsKind(err, jsonstore.KindDeserialize))
		})
	}
}

func TestSettingsCorruptFileIsDeserializeError(t *testing.T) {
	m, p := newTestManager(t)
	require.NoError(t, os.MkdirAll(p.DataDir, 0o755))
	require.NoError(t, os.WriteFile(p.SettingsFile(), []byte("{not json"), 0o644))

	_, err := m.Settings()
	require.Error(t, err)
	assert.True(t, jsonstore.IsKind(err, jsonstore.KindDeserialize))

	data, readErr := os.ReadFile(p.SettingsFile())
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(data))
}

func TestSettingsStoresValuesVerbatim(t *testing.T) {
	m, p := newTestManager(t)
	s := settings.DefaultSettings()
	s.Lang = ""
	s.Ribbon.Width = -5

	require.NoError(t, m.SetSettings(s))
	assert.FileExists(t, p.SettingsFile())

	got, err := m.Settings()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSetSettingsRejectsNil(t *testing.T) {
	m, p := newTestManager(t)

	err := m.SetSettings(nil)
	assert.ErrorIs(t, err, settings.ErrInvalid)
	assert.NoFileExists(t, p.SettingsFile())
}

func TestResetSettings(t *testing.T) {
	m, _ := newTestManager(t)
	s := settings.DefaultSettings()
	s.Lang = "en"
	require.NoError(t, m.SetSettings(s))

	reset, err := m.ResetSettings()
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultSettings(), reset)

	got, err := m.Settings()
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultSettings(), got)
}

func TestAppendBounded(t *testing.T) {
	in := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "b", "c", "d"}, AppendBounded(in, "d", 10))
	assert.Equal(t, []string{"c", "d"}, AppendBounded(in, "d", 2))
	assert.Equal(t, []string{"d"}, AppendBounded(nil, "d", 200))
	assert.Equal(t, []string{"a", "b", "c"}, in)
}

func TestAppendHistoryKeepsLastN(t *testing.T) {
	for _, n := range []int{0, 1, 199, 200, 201, 450} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m, _ := newTestManager(t)
			for i := 0; i < n; i++ {
				require.NoError(t, m.AppendHistory(fmt.Sprintf("https://example.com/%d", i)))
			}

			list, err := m.History()
			require.NoError(t, err)
			want := min(n, MaxHistory)
			require.Len(t, list, want)
			for i, u := range list {
				assert.Equal(t, fmt.Sprintf("https://example.com/%d", n-want+i), u)
			}
		})
	}
}

func TestAppendHistoryRejectsBlank(t *testing.T) {
	m, p := newTestManager(t)

	err := m.AppendHistory("   ")
	assert.ErrorIs(t, err, ErrEmptyURL)
	assert.NoFileExists(t, p.HistoryFile())
}

func TestAppendHistoryConcurrent(t *testing.T) {
	m, _ := newTestManager(t)
	var g errgroup.Group
	for i := 0; i < 40; i++ {
		g.Go(func() error {
			return m.AppendHistory(fmt.Sprintf("https://example.com/%d", i))
		})
	}
	require.NoError(t, g.Wait())

	list, err := m.History()
	require.NoError(t, err)
	assert.Len(t, list, 40)
}

func TestAppendHistoryCorruptFileFails(t *testing.T) {
	m, p := newTestManager(t)
	require.NoError(t, os.MkdirAll(p.DataDir, 0o755))
	require.NoError(t, os.WriteFile(p.HistoryFile(), []byte(`{"not":"a list"}`), 0o644))

	err := m.AppendHistory("https://example.com")
	assert.True(t, jsonstore.IsKind(err, jsonstore.KindDeserialize))
}

func TestClearHistory(t *testing.T) {
	m, p := newTestManager(t)
	require.NoError(t, m.AppendHistory("https://a.example"))

	require.NoError(t, m.ClearHistory())

	list, err := m.History()
	require.NoError(t, err)
	assert.Empty(t, list)
	data, err := os.ReadFile(p.HistoryFile())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestClearHistoryWithoutFile(t *testing.T) {
	m, p := newTestManager(t)

	require.NoError(t, m.ClearHistory())
	assert.FileExists(t, p.HistoryFile())
}

func TestHistoryWithSQLiteBackend(t *testing.T) {
	p := paths.Resolve(t.TempDir(), "", "")
	store, err := storage.NewForBackend(storage.BackendSQLite, p.DataDir)
	require.NoError(t, err)
	m := New(Options{Paths: p, HistoryStore: store})
	t.Cleanup(func() { _ = m.Close() })

	for i := 0; i < 205; i++ {
		require.NoError(t, m.AppendHistory(fmt.Sprintf("u%d", i)))
	}
	list, err := m.History()
	require.NoError(t, err)
	require.Len(t, list, MaxHistory)
	assert.Equal(t, "u5", list[0])
	assert.Equal(t, "u204", list[len(list)-1])
	assert.Equal(t, storage.BackendSQLite, m.HistoryBackend())
	assert.NoFileExists(t, p.HistoryFile())
}

func TestLastURL(t *testing.T) {
	m, p := newTestManager(t)
	assert.Equal(t, "", m.LastURL())

	require.NoError(t, m.RecordLastURL("https://a.example/page?q=1"))
	assert.Equal(t, "https://a.example/page?q=1", m.LastURL())

	require.NoError(t, m.RecordLastURL("https://b.example"))
	assert.Equal(t, "https://b.example", m.LastURL())

	assert.ErrorIs(t, m.RecordLastURL(""), ErrEmptyURL)

	// unreadable (a directory) still yields ""
	require.NoError(t, os.Remove(p.LastURLFile()))
	require.NoError(t, os.MkdirAll(p.LastURLFile(), 0o755))
	assert.Equal(t, "", m.LastURL())
}

func TestCycleOpacitySequence(t *testing.T) {
	m, _ := newTestManager(t)
	assert.Equal(t, 1.0, m.Opacity())

	var got []float64
	for i := 0; i < 10; i++ {
		got = append(got, m.CycleOpacity())
	}
	assert.Equal(t, []float64{0.9, 0.8, 0.7, 0.6, 1.0, 0.9, 0.8, 0.7, 0.6, 1.0}, got)
}

func TestCycleOpacityConcurrent(t *testing.T) {
	const k = 23
	m, _ := newTestManager(t)
	results := make([]float64, k)
	var g errgroup.Group
	for i := 0; i < k; i++ {
		g.Go(func() error {
			results[i] = m.CycleOpacity()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	want := make([]float64, k)
	for i := range want {
		want[i] = opacity.Levels()[(i+1)%len(opacity.Levels())]
	}
	sort.Float64s(want)
	sort.Float64s(results)
	assert.Equal(t, want, results)
}

func TestOpacityIsPerManager(t *testing.T) {
	p := paths.Resolve(t.TempDir(), "", "")
	a := New(Options{Paths: p})
	b := New(Options{Paths: p})

	a.CycleOpacity()
	a.CycleOpacity()

	assert.Equal(t, 0.8, a.Opacity())
	assert.Equal(t, 1.0, b.Opacity())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestClearCache(t *testing.T) {
	m, p := newTestManager(t)
	require.NoError(t, os.MkdirAll(filepath.Join(p.CacheDir(), "x"), 0o755))
	sibling := filepath.Join(p.ProfileDir, "Cookies")
	require.NoError(t, os.WriteFile(filepath.Join(p.ProfileDir, "Cookies"), []byte("c"), 0o644))

	require.NoError(t, m.ClearCache(false))
	assert.NoDirExists(t, p.CacheDir())
	assert.FileExists(t, sibling)

	require.NoError(t, m.ClearCache(true))
	assert.NoDirExists(t, p.ProfileDir)

	require.NoError(t, m.ClearCache(true))
	require.NoError(t, m.ClearCache(false))
}

func TestEnsureProfile(t *testing.T) {
	m, p := newTestManager(t)

	require.NoError(t, m.EnsureProfile())
	assert.DirExists(t, p.ProfileDir)
	assert.True(t, m.Profile().Exists())
}

func TestSetIgnoreCursor(t *testing.T) {
	m, _ := newTestManager(t)
	assert.ErrorIs(t, m.SetIgnoreCursor(true), ErrNoWindowHost)

	window := &fakeWindow{}
	withHost := New(Options{Paths: m.Paths(), WindowHost: window})
	require.NoError(t, withHost.SetIgnoreCursor(true))
	require.NoError(t, withHost.SetIgnoreCursor(false))
	assert.Equal(t, []bool{true, false}, window.ignore)

	window.err = errors.New("window closed")
	assert.ErrorContains(t, withHost.SetIgnoreCursor(true), "window closed")
}

func TestStatus(t *testing.T) {
	m, p := newTestManager(t)
	require.NoError(t, m.AppendHistory("https://a.example"))
	require.NoError(t, m.RecordLastURL("https://a.example"))
	m.CycleOpacity()

	st, err := m.Status()
	require.NoError(t, err)

	_, parseErr := uuid.Parse(st.SessionID)
	assert.NoError(t, parseErr)
	assert.Equal(t, m.SessionID(), st.SessionID)
	assert.Equal(t, p.DataDir, st.DataDir)
	assert.Equal(t, p.ProfileDir, st.ProfileDir)
	assert.False(t, st.ProfileExists)
	assert.Equal(t, storage.BackendJSON, st.HistoryBackend)
	assert.Equal(t, 1, st.HistoryLength)
	assert.Equal(t, "https://a.example", st.LastURL)
	assert.Equal(t, 0.9, st.Opacity)
}
