package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/randsrc/randsrc"
	"github.com/randsrc/randsrc/source"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	availStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	sampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const tickInterval = 800 * time.Millisecond

type monitorModel struct {
	sources  []source.Source
	rows     []sourceRow
	input    textinput.Model
	selected int
	width    int
	paused   bool
	state    modelState
}

type sourceRow struct {
	lastHex  string
	lastErr  string
	draws    int
	failures int
}

type modelState int

const (
	stateMonitor modelState = iota
	stateSetWidth
)

type tickMsg time.Time

type sampleResult struct {
	hex string
	err error
	idx int
}

type samplesMsg []sampleResult

func newMonitorModel() *monitorModel {
	sources := source.All()
	return &monitorModel{
		sources: sources,
		rows:    make([]sourceRow, len(sources)),
		width:   8,
		state:   stateMonitor,
	}
}

func (m *monitorModel) Init() tea.Cmd {
	return tea.Batch(m.sampleAll, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleAll draws one buffer from every available source.
func (m *monitorModel) sampleAll() tea.Msg {
	ctx := context.Background()
	results := make([]sampleResult, 0, len(m.sources))
	for i, src := range m.sources {
		if !src.Available() {
			continue
		}
		buf := make([]byte, m.width)
		if err := src.Fill(ctx, buf); err != nil {
			results = append(results, sampleResult{idx: i, err: err})
			continue
		}
		results = append(results, sampleResult{idx: i, hex: randsrc.HexString(buf)})
	}
	return samplesMsg(results)
}

func (m *monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateMonitor && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateMonitor && m.selected < len(m.sources)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateMonitor:
				return m, m.sampleAll

			case stateSetWidth:
				if n, err := strconv.Atoi(m.input.Value()); err == nil && n > 0 && n <= source.MaxFillBytes {
					m.width = n
				}
				m.state = stateMonitor
			}

		case " ":
			if m.state == stateMonitor {
				m.paused = !m.paused
				if !m.paused {
					return m, tick()
				}
			}

		case "w":
			if m.state == stateMonitor {
				m.prepareWidthInput()
				m.state = stateSetWidth
				return m, nil
			}

		case "esc":
			if m.state == stateSetWidth {
				m.state = stateMonitor
			}
		}

	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(m.sampleAll, tick())

	case samplesMsg:
		for _, r := range msg {
			row := &m.rows[r.idx]
			if r.err != nil {
				row.failures++
				row.lastErr = r.err.Error()
				continue
			}
			row.draws++
			row.lastHex = r.hex
			row.lastErr = ""
		}
	}

	if m.state == stateSetWidth {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *monitorModel) prepareWidthInput() {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(m.width)
	ti.Prompt = "sample bytes: "
	ti.Width = 10
	ti.Focus()
	m.input = ti
}

func (m *monitorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("randsrc monitor"))
	b.WriteString(fmt.Sprintf("  %d-byte samples every %s\n\n", m.width, tickInterval))

	for i, src := range m.sources {
		row := m.rows[i]
		line := m.formatRow(src, row)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch m.state {
	case stateSetWidth:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc back"))

	case stateMonitor:
		status := "space pause"
		if m.paused {
			status = "space resume"
		}
		b.WriteString(helpStyle.Render("↑/↓ select • enter sample • w width • " + status + " • q quit"))
	}

	return b.String()
}

func (m *monitorModel) formatRow(src source.Source, row sourceRow) string {
	avail := "available"
	if !src.Available() {
		avail = "unavailable"
	}

	out := fmt.Sprintf("%s %s  draws:%d fails:%d  ",
		nameStyle.Render(fmt.Sprintf("%-10s", src.Name())),
		availStyle.Render(fmt.Sprintf("%-11s", avail)),
		row.draws, row.failures)

	switch {
	case row.lastErr != "":
		out += errorStyle.Render(row.lastErr)
	case row.lastHex != "":
		hex := row.lastHex
		if len(hex) > 48 {
			hex = hex[:48] + "…"
		}
		out += sampleStyle.Render(hex)
	}

	return out
}

func runInteractive() error {
	p := tea.NewProgram(newMonitorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
