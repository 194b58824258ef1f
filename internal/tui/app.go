// Package tui provides an interactive terminal preview of processed usage.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"usagemark/internal/cli"
	"usagemark/internal/model"
	"usagemark/internal/pipeline"
)

var periods = []model.Period{model.PeriodDay, model.PeriodWeek, model.PeriodMonth, model.PeriodAll}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	tabStyle      = lipgloss.NewStyle().Foreground(cli.ColorTextMuted).Padding(0, 1)
	activeTab     = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	valueStyle    = lipgloss.NewStyle().Foreground(cli.ColorText)
	costStyle     = lipgloss.NewStyle().Foreground(cli.ColorGreen)
	estimateStyle = lipgloss.NewStyle().Foreground(cli.ColorOrange)
	helpStyle     = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)

type loadedMsg struct {
	records  []model.UsageRecord
	problems []string
}

type loadFailedMsg struct{ err error }

// App is the bubbletea model for the usage preview.
type App struct {
	paths        []string
	maxDailyRows int

	width   int
	height  int
	loading bool
	err     error

	spinner  spinner.Model
	records  []model.UsageRecord
	problems []string

	periodIdx int
	result    model.ProcessedResult
}

// New builds the preview app over the given source files.
func New(paths []string, defaultPeriod model.Period, maxDailyRows int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	idx := len(periods) - 1
	for i, p := range periods {
		if p == defaultPeriod {
			idx = i
		}
	}

	return App{
		paths:        paths,
		maxDailyRows: maxDailyRows,
		loading:      true,
		spinner:      sp,
		periodIdx:    idx,
	}
}

// Init starts the spinner and kicks off the load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

func (a App) loadCmd() tea.Cmd {
	paths := a.paths
	return func() tea.Msg {
		lr := pipeline.Load(paths, nil)
		return loadedMsg{records: lr.Records, problems: lr.Problems}
	}
}

// Update handles input and load completion.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case loadedMsg:
		a.loading = false
		a.records = msg.records
		a.problems = msg.problems
		a.recompute()
		return a, nil

	case loadFailedMsg:
		a.loading = false
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "right", "tab", "l":
			a.periodIdx = (a.periodIdx + 1) % len(periods)
			a.recompute()
		case "left", "shift+tab", "h":
			a.periodIdx = (a.periodIdx + len(periods) - 1) % len(periods)
			a.recompute()
		case "r":
			a.loading = true
			return a, tea.Batch(a.spinner.Tick, a.loadCmd())
		}
	}
	return a, nil
}

// recompute re-derives the processed result for the selected period. The
// pipeline is pure and fast, so switching periods just recomputes.
func (a *App) recompute() {
	a.result = pipeline.Process(a.records, periods[a.periodIdx], time.Now(), a.maxDailyRows)
}

// View renders the preview.
func (a App) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("usagemark"))
	b.WriteString("\n\n")

	if a.loading {
		fmt.Fprintf(&b, "  %s loading %d files...\n", a.spinner.View(), len(a.paths))
		return b.String()
	}
	if a.err != nil {
		fmt.Fprintf(&b, "  error: %v\n", a.err)
		return b.String()
	}

	b.WriteString("  ")
	for i, p := range periods {
		style := tabStyle
		if i == a.periodIdx {
			style = activeTab
		}
		b.WriteString(style.Render(string(p)))
	}
	b.WriteString("\n\n")

	s := a.result.Summary
	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", label)),
			valueStyle.Render(value),
		)
	}
	row("Total tokens", cli.FormatTokens(s.TotalTokens))
	row("Input / Output", cli.FormatTokens(s.TotalInputTokens)+" / "+cli.FormatTokens(s.TotalOutputTokens))
	row("Cache w/r", cli.FormatTokens(s.TotalCacheCreation)+" / "+cli.FormatTokens(s.TotalCacheRead))
	fmt.Fprintf(&b, "  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-16s", "Total cost")),
		costStyle.Render(cli.FormatCost(s.TotalCost)),
	)
	row("Daily average", fmt.Sprintf("%s / %s over %d days",
		cli.FormatTokens(s.DailyAverage.Tokens),
		cli.FormatCost(s.DailyAverage.Cost),
		s.PeriodDays,
	))

	if graph := a.renderGraph(); graph != "" {
		b.WriteString("\n")
		b.WriteString(graph)
		b.WriteString("\n")
	}

	if len(a.result.Models) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Models"))
		b.WriteString("\n")
		for _, m := range a.result.Models {
			fmt.Fprintf(&b, "  %-14s %8s  %s\n",
				m.ShortName,
				cli.FormatCost(m.Cost),
				labelStyle.Render(cli.FormatShare(m.Percentage)),
			)
		}
		if a.result.Estimated {
			b.WriteString(estimateStyle.Render("  ~ estimated from cost ratio"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  ←/→ period · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderGraph plots daily tokens oldest to newest.
func (a App) renderGraph() string {
	daily := a.result.DailyUsage
	if len(daily) < 2 {
		return ""
	}

	data := make([]float64, len(daily))
	for i, d := range daily {
		// DailyUsage is newest-first; the graph reads left to right.
		data[len(daily)-1-i] = float64(d.Tokens)
	}

	width := a.width - 16
	if width < 20 {
		width = 20
	}
	if width > 80 {
		width = 80
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(width),
		asciigraph.Caption("tokens per day"),
	)

	indented := "  " + strings.ReplaceAll(graph, "\n", "\n  ")
	return labelStyle.Render(indented)
}
