// ============================================================================
// cpplite - C++Lite Front End
// ============================================================================
//
// Package:     astviewer
// Description: Bubbletea model for browsing a parsed C++Lite program
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package astviewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/msto63/cpplite/internal/tui"
	"github.com/msto63/cpplite/pkg/lite/ast"
)

// Tab selects the rendering shown in the viewport
type Tab int

const (
	TabTree Tab = iota
	TabSExpr
	TabTokens
	TabYAML
	numTabs
)

var tabNames = []string{"Tree", "S-Expr", "Tokens", "YAML"}

func (t Tab) String() string {
	if t >= 0 && t < numTabs {
		return tabNames[t]
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Model is the main Bubbletea model of the AST viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error
	tab     Tab

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Document
	doc     Document
	stats   *ast.CollectorVisitor
	reload  func() (Document, error)
	watcher *Watcher
}

// Config holds viewer configuration
type Config struct {
	Document Document

	// Reload parses the source again; nil disables the reload key
	Reload func() (Document, error)

	// Watcher triggers Reload whenever the source file changes
	Watcher *Watcher
}

// New creates a new viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tui.ColorPrimary)

	m := Model{
		spinner: sp,
		reload:  cfg.Reload,
		watcher: cfg.Watcher,
	}
	m.setDocument(cfg.Document)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.watcher.wait
	}
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // Title panel + tabs
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case fileChangedMsg:
		cmds = append(cmds, m.watcher.wait)
		if m.reload != nil && !m.loading {
			m.loading = true
			cmds = append(cmds, m.spinner.Tick, m.reloadDocument)
		}

	case watchErrMsg:
		m.err = msg.err
		cmds = append(cmds, m.watcher.wait)

	case reloadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.setDocument(msg.doc)
			m.updateViewportContent()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.selectTab((m.tab + 1) % numTabs)
		return m, nil

	case tea.KeyShiftTab:
		m.selectTab((m.tab + numTabs - 1) % numTabs)
		return m, nil

	case tea.KeyRunes:
		switch key := string(msg.Runes); key {
		case "q":
			return m, tea.Quit

		case "1", "2", "3", "4":
			m.selectTab(Tab(key[0] - '1'))
			return m, nil

		case "r":
			if m.reload == nil || m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.reloadDocument)

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading AST viewer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(tui.RenderTabs(tabNames, int(m.tab)))
	b.WriteString("\n")

	b.WriteString(ContentPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with the source name and tree statistics
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SourceNameStyle.Render(m.doc.Name),
		strings.Repeat(" ", 3),
		StatsStyle.Render(m.statsLine()),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) statsLine() string {
	if m.stats == nil {
		return "no program"
	}
	return fmt.Sprintf("%d declarations, %d statements, %d operators, %d tokens",
		len(m.stats.Declarations), m.stats.Statements, len(m.stats.Operators), len(m.doc.Tokens))
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	left := tui.HelpDescStyle.Render(m.tab.String())

	var right string
	switch {
	case m.loading:
		right = m.spinner.View() + " Parsing..."
	case m.err != nil:
		right = ReloadErrorStyle.Render(m.err.Error())
	default:
		right = tui.HelpDescStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}

	return tui.StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		tui.RenderKeyHint("1-4/Tab", "View"),
		tui.RenderKeyHint("g/G", "Top/Bottom"),
	}
	if m.reload != nil {
		items = append(items, tui.RenderKeyHint("r", "Reload"))
	}
	if m.watcher != nil {
		items = append(items, tui.HelpDescStyle.Render("watching"))
	}
	items = append(items, tui.RenderKeyHint("q", "Quit"))

	return tui.RenderHelp(strings.Join(items, "  "))
}

func (m *Model) setDocument(doc Document) {
	m.doc = doc
	m.stats = nil
	if doc.Program != nil {
		m.stats = ast.CollectNodes(doc.Program)
	}
}

func (m *Model) selectTab(t Tab) {
	m.tab = t
	m.updateViewportContent()
	m.viewport.GotoTop()
}

// updateViewportContent renders the current tab into the viewport
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.content())
}

// content returns the text of the current tab
func (m Model) content() string {
	switch m.tab {
	case TabTokens:
		var b strings.Builder
		for _, tok := range m.doc.Tokens {
			fmt.Fprintf(&b, "%4d:%-4d %s\n", tok.Line, tok.Column, tok)
		}
		return b.String()
	}

	if m.doc.Program == nil {
		return "no program"
	}

	switch m.tab {
	case TabSExpr:
		return m.doc.Program.String()
	case TabYAML:
		out, err := yaml.Marshal(ast.ToMap(m.doc.Program, false))
		if err != nil {
			return "yaml: " + err.Error()
		}
		return string(out)
	default:
		return ast.Display(m.doc.Program)
	}
}

// reloadDocument runs the reload function
func (m Model) reloadDocument() tea.Msg {
	doc, err := m.reload()
	return reloadedMsg{doc: doc, err: err}
}

// Run starts the AST viewer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
