package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/DaanHessen/gembooth-dash/internal/content"
	"github.com/DaanHessen/gembooth-dash/internal/envfile"
)

const (
	viewMenu = "menu"
	viewPage = "page"
	viewHelp = "help"
)

// Options configures the interactive dashboard.
type Options struct {
	EnvFile   string
	Theme     string
	Plain     bool
	Version   string
	Logger    *zap.Logger
	Now       func() time.Time
	Clipboard func(string) error
}

type model struct {
	envPath  string
	env      envfile.Map
	envFound bool
	loadErr  error
	log      *zap.Logger
	now      func() time.Time
	copyText func(string) error
	plain    bool
	version  string

	theme  Theme
	styles styles

	view     string
	prevView string
	page     content.Page
	showAll  bool
	viewport viewport.Model
	width    int
	height   int
	status   string
	cmdIndex int
}

func initialModel(opts Options) model {
	m := model{
		envPath:  opts.EnvFile,
		log:      opts.Logger,
		now:      opts.Now,
		copyText: opts.Clipboard,
		plain:    opts.Plain,
		version:  opts.Version,
		view:     viewMenu,
		viewport: viewport.New(80, 20),
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.copyText == nil {
		m.copyText = clipboard.WriteAll
	}
	m.setTheme(opts.Theme)
	m.reload()
	return m
}

// reload reads the env file again. Read failures leave an empty map and are
// reported on the status line.
func (m *model) reload() {
	env, found, err := envfile.LoadFound(m.envPath)
	m.env = env
	m.loadErr = err
	m.envFound = found && err == nil
	if err != nil {
		m.log.Warn("env file unreadable", zap.String("path", m.envPath), zap.Error(err))
		return
	}
	m.log.Debug("env file loaded", zap.String("path", m.envPath), zap.Int("vars", len(env)), zap.Bool("found", m.envFound))
}

func (m *model) setTheme(name string) {
	m.theme = ThemeFor(name)
	m.styles = newStyles(m.theme)
}

func (m *model) openPage(p content.Page) {
	if p.ID != m.page.ID || m.showAll {
		m.cmdIndex = 0
	}
	m.page = p
	m.showAll = false
	m.view = viewPage
	m.status = ""
	m.refreshContent()
	m.viewport.GotoTop()
}

func (m *model) openAll() {
	m.page = content.Page{}
	m.showAll = true
	m.view = viewPage
	m.status = ""
	m.refreshContent()
	m.viewport.GotoTop()
}

func (m *model) stepPage(step int) {
	all := content.Pages()
	idx := 0
	for i, p := range all {
		if p.ID == m.page.ID {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(all)
	if idx < 0 {
		idx += len(all)
	}
	m.openPage(all[idx])
}

func (m *model) layout() (sidebarWidth, contentWidth, contentHeight int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 30
	}
	sidebarWidth = 24
	if w < 90 {
		sidebarWidth = 18
	}
	contentWidth = w - sidebarWidth - 3
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight = h - 2
	if contentHeight < 5 {
		contentHeight = 5
	}
	return sidebarWidth, contentWidth, contentHeight
}

func (m *model) resize() {
	_, cw, ch := m.layout()
	m.viewport.Width = cw
	m.viewport.Height = ch
	if m.view == viewPage {
		m.refreshContent()
	}
}

// refreshContent re-renders the current page into the viewport.
func (m *model) refreshContent() {
	_, cw, ch := m.layout()
	m.viewport.Width = cw
	m.viewport.Height = ch
	var (
		md  string
		err error
	)
	if m.showAll {
		md, err = content.AllMarkdown(m.env, m.now())
	} else {
		md, err = content.Markdown(m.page.ID, m.env, m.now())
	}
	if err != nil {
		m.status = "Render failed: " + err.Error()
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(renderMarkdown(md, cw-2, m.plain))
}

func (m *model) cycleTheme() {
	m.setTheme(NextThemeName(m.theme.Name, 1))
	m.status = "Theme: " + m.theme.Name
	if m.view == viewPage {
		m.refreshContent()
	}
}

func (m *model) commands() []content.Command {
	return content.BuildCommands().All()
}

func (m *model) selectCommand(step int) {
	cmds := m.commands()
	m.cmdIndex = (m.cmdIndex + step) % len(cmds)
	if m.cmdIndex < 0 {
		m.cmdIndex += len(cmds)
	}
	m.status = fmt.Sprintf("[%d/%d] %s", m.cmdIndex+1, len(cmds), cmds[m.cmdIndex].Command)
}

func (m *model) copySelected() {
	cmd := m.commands()[m.cmdIndex]
	if err := m.copyText(cmd.Command); err != nil {
		m.log.Warn("clipboard write failed", zap.Error(err))
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = "Copied to clipboard: " + cmd.Command
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == viewHelp {
			switch k {
			case "esc", "q", "?", "enter":
				m.view = m.prevView
			}
			return m, nil
		}
		switch k {
		case "r":
			m.reload()
			m.status = "Reloaded " + m.envPath
			if m.view == viewPage {
				m.refreshContent()
			}
			return m, nil
		case "t":
			m.cycleTheme()
			return m, nil
		case "?":
			m.prevView = m.view
			m.view = viewHelp
			return m, nil
		case "0":
			m.openAll()
			return m, nil
		}
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if p, ok := content.Lookup(k); ok {
				m.openPage(p)
			}
			return m, nil
		}
		if m.view == viewMenu {
			if k == "q" || k == "esc" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch k {
		case "esc", "q", "m":
			m.view = viewMenu
			m.status = ""
			return m, nil
		case "tab":
			m.stepPage(1)
			return m, nil
		case "shift+tab":
			m.stepPage(-1)
			return m, nil
		}
		if !m.showAll && m.page.ID == content.PageCommands {
			switch k {
			case "]":
				m.selectCommand(1)
				return m, nil
			case "[":
				m.selectCommand(-1)
				return m, nil
			case "c", "y":
				m.copySelected()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	switch m.view {
	case viewHelp:
		return m.renderHelp()
	case viewPage:
		return m.renderPageLayout()
	default:
		return m.renderMainMenu()
	}
}

// Layout rendering -----------------------------------------------------------
func (m model) renderMainMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("📋 GEMBOOTH DASHBOARD MENU") + "\n\n")
	for _, p := range content.Pages() {
		fmt.Fprintf(&b, "%s %s %s\n", m.styles.menuKey.Render("["+p.Key+"]"), p.Icon, p.Title)
	}
	fmt.Fprintf(&b, "%s %s\n\n", m.styles.menuKey.Render("[0]"), "Show All Information")
	b.WriteString(m.styles.quit.Render("q Quit") + "   ? Help   t Theme   r Reload")
	return m.styles.menu.Render(b.String()) + "\n" + m.renderStatusBar()
}

func (m model) renderSidebar(width, height int) string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("🎨 GemBooth") + "\n\n")
	for _, p := range content.Pages() {
		label := fmt.Sprintf(" %s %s", p.Key, p.Short)
		if !m.showAll && p.ID == m.page.ID {
			b.WriteString(m.styles.sidebarActive.Width(width-2).Render(label) + "\n")
			continue
		}
		b.WriteString(m.styles.sidebarItem.Render(label) + "\n")
	}
	all := " 0 Show All"
	if m.showAll {
		b.WriteString(m.styles.sidebarActive.Width(width-2).Render(all) + "\n")
	} else {
		b.WriteString(m.styles.sidebarItem.Render(all) + "\n")
	}
	return m.styles.sidebar.Width(width).Height(height).Render(b.String())
}

func (m model) renderPageLayout() string {
	sw, _, ch := m.layout()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(sw, ch),
		m.styles.content.Render(m.viewport.View()),
	)
	return body + "\n" + m.renderStatusBar()
}

func (m model) renderStatusBar() string {
	var env string
	switch {
	case m.loadErr != nil:
		env = m.styles.warning.Render("⚠ " + m.envPath + " unreadable")
	case m.envFound:
		env = m.styles.success.Render(fmt.Sprintf("● %s (%d vars)", m.envPath, len(m.env)))
	default:
		env = m.styles.warning.Render("○ " + m.envPath + " not found")
	}
	parts := []string{env}
	if m.view == viewPage && !m.showAll && m.page.ID == content.PageCommands && m.status == "" {
		parts = append(parts, "[ ] select  c copy")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if m.view == viewPage {
		parts = append(parts, fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	}
	return m.styles.status.Render(strings.Join(parts, "  │  "))
}

func (m model) renderHelp() string {
	lines := []string{
		m.styles.title.Render("HELP"),
		"",
		"1-9        open a page",
		"0          show all pages",
		"tab        next page (shift+tab previous)",
		"↑/↓ j/k    scroll, pgup/pgdn page",
		"[ ]        select command (Commands page)",
		"c          copy selected command",
		"r          reload " + m.envPath,
		"t          cycle theme (" + m.theme.Name + ")",
		"esc/q/m    back to menu (q quits from the menu)",
		"ctrl+c     quit",
	}
	if m.version != "" {
		lines = append(lines, "", "gemdash "+m.version)
	}
	return m.styles.menu.Render(strings.Join(lines, "\n"))
}

// renderMarkdown styles md for the terminal; plain uses glamour's no-colour
// style. Renderer failures fall back to the raw Markdown.
func renderMarkdown(md string, width int, plain bool) string {
	style := "dark"
	if plain {
		style = "notty"
	}
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
