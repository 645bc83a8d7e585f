package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/gembooth-dash/internal/content"
	"github.com/DaanHessen/gembooth-dash/internal/envfile"
)

var fixedNow = time.Date(2025, 1, 17, 9, 30, 0, 0, time.UTC)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) write(s string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, s)
	return nil
}

func newTestModel(t *testing.T, envBody string) (model, *fakeClipboard, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env.local")
	if envBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(envBody), 0o600))
	}
	clip := &fakeClipboard{}
	m := initialModel(Options{
		EnvFile:   path,
		Theme:     "gembooth",
		Plain:     true,
		Now:       func() time.Time { return fixedNow },
		Clipboard: clip.write,
	})
	return m, clip, path
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestInitialModelLoadsEnv(t *testing.T) {
	m, _, _ := newTestModel(t, "VITE_SUPABASE_URL=https://abc.supabase.co\n")
	assert.Equal(t, viewMenu, m.view)
	assert.True(t, m.envFound)
	assert.NoError(t, m.loadErr)
	assert.Equal(t, "https://abc.supabase.co", m.env["VITE_SUPABASE_URL"])
	assert.Contains(t, m.View(), "GEMBOOTH DASHBOARD MENU")
}

func TestMissingEnvIsNotAnError(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	assert.False(t, m.envFound)
	assert.NoError(t, m.loadErr)
	assert.Empty(t, m.env)
	assert.Contains(t, m.View(), "not found")
}

func TestUnreadableEnvDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	m := initialModel(Options{EnvFile: dir, Plain: true})
	assert.Error(t, m.loadErr)
	assert.False(t, m.envFound)
	assert.Empty(t, m.env)
	assert.Contains(t, m.View(), "unreadable")
	m = press(t, m, "2")
	assert.Equal(t, viewPage, m.view)
}

func TestMenuOpensPages(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	m = press(t, m, "3")
	assert.Equal(t, viewPage, m.view)
	assert.Equal(t, content.PageSupabase, m.page.ID)
	assert.Contains(t, m.View(), "Supabase")

	m = press(t, m, "tab")
	assert.Equal(t, content.PageStripe, m.page.ID)
	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, content.PageAPIKeys, m.page.ID)

	m = press(t, m, "9", "tab")
	assert.Equal(t, content.PageOverview, m.page.ID)

	m = press(t, m, "esc")
	assert.Equal(t, viewMenu, m.view)
}

func TestShowAll(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	m = press(t, m, "0")
	assert.Equal(t, viewPage, m.view)
	assert.True(t, m.showAll)
	m = press(t, m, "1")
	assert.False(t, m.showAll)
}

func TestQuitFromMenuOnly(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	m = press(t, m, "4")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	assert.Equal(t, viewMenu, next.(model).view)

	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpReturnsToPreviousView(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	m = press(t, m, "5", "?")
	assert.Equal(t, viewHelp, m.view)
	assert.Contains(t, m.View(), "copy selected command")
	m = press(t, m, "esc")
	assert.Equal(t, viewPage, m.view)
	assert.Equal(t, content.PageCommands, m.page.ID)
}

func TestCopyCommand(t *testing.T) {
	m, clip, _ := newTestModel(t, "")
	m = press(t, m, "5", "c")
	require.Equal(t, []string{"npm run dev"}, clip.copied)
	assert.Contains(t, m.status, "Copied")

	m = press(t, m, "]", "c")
	assert.Equal(t, "npm run build", clip.copied[1])

	m = press(t, m, "[", "[", "c")
	last := content.BuildCommands().All()
	assert.Equal(t, last[len(last)-1].Command, clip.copied[2])
}

func TestCopyOnlyOnCommandsPage(t *testing.T) {
	m, clip, _ := newTestModel(t, "")
	press(t, m, "1", "c")
	assert.Empty(t, clip.copied)
}

func TestCopyFailureIsReported(t *testing.T) {
	m, clip, _ := newTestModel(t, "")
	clip.err = errors.New("no clipboard utility")
	m = press(t, m, "5", "c")
	assert.Equal(t, "Copy failed: no clipboard utility", m.status)
}

func TestReloadPicksUpChanges(t *testing.T) {
	m, _, path := newTestModel(t, "A=1\n")
	m = press(t, m, "2")
	require.NoError(t, os.WriteFile(path, []byte("A=2\nB=3\n"), 0o600))
	m = press(t, m, "r")
	assert.Equal(t, envfile.Map{"A": "2", "B": "3"}, m.env)
	assert.Contains(t, m.status, "Reloaded")
}

func TestThemeCycle(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	start := m.theme.Name
	m = press(t, m, "t")
	assert.Equal(t, NextThemeName(start, 1), m.theme.Name)
	assert.NotEqual(t, start, m.theme.Name)
}

func TestWindowResize(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	m = press(t, m, "8")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	sw, cw, ch := m.layout()
	assert.Equal(t, 24, sw)
	assert.Equal(t, cw, m.viewport.Width)
	assert.Equal(t, ch, m.viewport.Height)
}

func TestPagesNeverShowRawSecrets(t *testing.T) {
	secret := "sk_test_51HabcdefghijklmnopqrstuvwxyzSECRETTAIL"
	m, _, _ := newTestModel(t, "STRIPE_SECRET_KEY="+secret+"\n")
	m = press(t, m, "2")
	assert.NotContains(t, m.viewport.View(), secret)
}

func TestThemeFallback(t *testing.T) {
	assert.Equal(t, "gembooth", ThemeFor("nope").Name)
	assert.Equal(t, "dracula", ThemeFor("dracula").Name)
	names := ThemeNames()
	assert.Equal(t, names[len(names)-1], NextThemeName(names[0], -1))
	assert.Equal(t, names[0], NextThemeName(names[len(names)-1], 1))
}

func TestStylesUseWholePalette(t *testing.T) {
	for _, name := range ThemeNames() {
		th := ThemeFor(name)
		st := newStyles(th)
		assert.Equal(t, th.Background, st.menu.GetBackground(), name)
		assert.Equal(t, th.Surface, st.sidebar.GetBackground(), name)
		assert.Equal(t, th.AccentAlt, st.sidebarActive.GetBackground(), name)
		assert.Equal(t, th.Panel, st.status.GetBackground(), name)
		assert.Equal(t, th.Accent, st.title.GetForeground(), name)
	}
}

func TestPrintRaw(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, "stripe", envfile.Map{}, PrintOptions{Raw: true, Now: fixedNow})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "# 💳 Stripe Integration"))
	assert.Contains(t, buf.String(), "4242 4242 4242 4242")
}

func TestPrintAllByKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, "0", envfile.Map{}, PrintOptions{Raw: true, Now: fixedNow}))
	for _, p := range content.Pages() {
		assert.Contains(t, buf.String(), p.Title)
	}
}

func TestPrintStyled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, "8", envfile.Map{}, PrintOptions{Plain: true, Width: 60}))
	assert.Contains(t, buf.String(), "Renaissance")
}

func TestPrintUnknownPage(t *testing.T) {
	err := Print(&bytes.Buffer{}, "pricing", envfile.Map{}, PrintOptions{})
	assert.True(t, errors.Is(err, content.ErrUnknownPage))
}
