package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"call-summary/internal/api/v1/dto"
)

// Tab is one pane of the result viewer.
type Tab int

const (
	TabSummary Tab = iota
	TabTitles
	TabTranscript
)

var tabNames = []string{"Summary", "Titles", "Transcript"}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Uploader sends a recording to the summarizer service.
type Uploader interface {
	SummarizeFile(ctx context.Context, path string) (*dto.GenerateSummaryResponse, error)
}

// Model is the root bubbletea model for the result viewer.
type Model struct {
	uploader Uploader
	path     string
	timeout  time.Duration

	loading  bool
	started  time.Time
	frame    int
	result   *dto.GenerateSummaryResponse
	errorMsg string

	activeTab Tab
	scroll    int
	width     int
	height    int
}

// New creates a viewer that uploads path when started.
func New(uploader Uploader, path string, timeout time.Duration) Model {
	return Model{
		uploader: uploader,
		path:     path,
		timeout:  timeout,
		loading:  true,
	}
}

// Init starts the upload and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.submitCmd(), spinnerCmd())
}

func (m Model) submitCmd() tea.Cmd {
	uploader, path, timeout := m.uploader, m.path, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := uploader.SummarizeFile(ctx, path)
		if err != nil {
			return SummaryErrorMsg{Err: err}
		}
		return SummaryLoadedMsg{Response: resp}
	}
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll = min(m.scroll, m.maxScroll())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SummaryLoadedMsg:
		m.loading = false
		m.result = msg.Response
		m.errorMsg = ""
		m.scroll = 0
		return m, nil

	case SummaryErrorMsg:
		m.loading = false
		m.errorMsg = msg.Err.Error()
		return m, nil

	case SpinnerTickMsg:
		if !m.loading {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, spinnerCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeyTab, KeyRight:
		m.activeTab = (m.activeTab + 1) % Tab(len(tabNames))
		m.scroll = 0

	case KeyShiftTab, KeyLeft:
		m.activeTab = (m.activeTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		m.scroll = 0

	case KeySummary:
		m.activeTab, m.scroll = TabSummary, 0
	case KeyTitles:
		m.activeTab, m.scroll = TabTitles, 0
	case KeyTranscript:
		m.activeTab, m.scroll = TabTranscript, 0

	case KeyDown, KeyJ:
		if m.scroll < m.maxScroll() {
			m.scroll++
		}

	case KeyUp, KeyK:
		if m.scroll > 0 {
			m.scroll--
		}

	case KeyRetry:
		if m.loading || m.errorMsg == "" {
			return m, nil
		}
		m.loading = true
		m.errorMsg = ""
		return m, tea.Batch(m.submitCmd(), spinnerCmd())
	}

	return m, nil
}

func (m Model) contentLines() []string {
	if m.result == nil {
		return nil
	}
	width := max(m.width-2, 20)

	switch m.activeTab {
	case TabTitles:
		lines := make([]string, 0, len(m.result.SuggestedTitles))
		for i, title := range m.result.SuggestedTitles {
			lines = append(lines, fmt.Sprintf("%s %s", BulletStyle.Render(fmt.Sprintf("%d.", i+1)), title))
		}
		return lines

	case TabTranscript:
		var lines []string
		for _, line := range strings.Split(m.result.FullTranscript, "\n") {
			speaker, text, ok := strings.Cut(line, ": ")
			if !ok {
				lines = append(lines, wrapText(line, width)...)
				continue
			}
			wrapped := wrapText(text, max(width-lipgloss.Width(speaker)-2, 10))
			lines = append(lines, SpeakerStyle.Render(speaker+":")+" "+wrapped[0])
			for _, rest := range wrapped[1:] {
				lines = append(lines, strings.Repeat(" ", lipgloss.Width(speaker)+2)+rest)
			}
		}
		return lines

	default:
		var lines []string
		for _, line := range strings.Split(m.result.Summary, "\n") {
			switch {
			case strings.HasPrefix(line, "#"):
				lines = append(lines, HeadingStyle.Render(strings.TrimSpace(strings.TrimLeft(line, "#"))))
			case strings.HasPrefix(line, "- "):
				for i, w := range wrapText(strings.TrimPrefix(line, "- "), width-2) {
					prefix := "  "
					if i == 0 {
						prefix = BulletStyle.Render("•") + " "
					}
					lines = append(lines, prefix+w)
				}
			default:
				lines = append(lines, wrapText(line, width)...)
			}
		}
		return lines
	}
}

func (m Model) visibleLines() int {
	// header, tabs, two dividers, footer
	return max(m.height-5, 1)
}

func (m Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleLines(), 0)
}

// View renders the viewer.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.renderHeader(),
		m.renderTabs(),
		DividerStyle.Render(strings.Repeat("─", m.width)),
		m.renderBody(),
		DividerStyle.Render(strings.Repeat("─", m.width)),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	header := TitleStyle.Render("callsum") + "  " + StatusStyle.Render(filepath.Base(m.path))
	if m.loading {
		header += "  " + SpinnerStyle.Render(spinnerFrames[m.frame]) + StatusStyle.Render(" summarizing...")
	}
	return header
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.activeTab {
			tabs[i] = ActiveTabStyle.Render(label)
		} else {
			tabs[i] = TabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody() string {
	height := m.visibleLines()
	var lines []string

	switch {
	case m.errorMsg != "":
		lines = []string{ErrorStyle.Render("Error: ") + ErrorTextStyle.Render(m.errorMsg)}
	case m.loading:
		lines = []string{StatusStyle.Render("Uploading and processing the recording...")}
	default:
		content := m.contentLines()
		end := min(m.scroll+height, len(content))
		lines = content[min(m.scroll, end):end]
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	parts := []string{
		FooterKeyStyle.Render("Tab") + FooterDescStyle.Render(" Next"),
		FooterKeyStyle.Render("1-3") + FooterDescStyle.Render(" Jump"),
		FooterKeyStyle.Render("↑↓") + FooterDescStyle.Render(" Scroll"),
	}
	if m.errorMsg != "" {
		parts = append(parts, FooterKeyStyle.Render("r")+FooterDescStyle.Render(" Retry"))
	}
	parts = append(parts, FooterKeyStyle.Render("q")+FooterDescStyle.Render(" Quit"))
	return strings.Join(parts, "  ")
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

// Run starts the viewer in the alternate screen and blocks until it exits.
func Run(uploader Uploader, path string, timeout time.Duration) error {
	_, err := tea.NewProgram(New(uploader, path, timeout), tea.WithAltScreen()).Run()
	return err
}
