package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbonatakis/fimgen/internal/record"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	barStyle      = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
)

const listWidth = 44

func (m Model) View() string {
	if len(m.examples) == 0 {
		return "No examples loaded.\n\nPress q to quit.\n"
	}

	list := m.renderList()
	detail := m.detail.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail)
	return body + "\n" + m.renderBottomBar()
}

func (m Model) renderList() string {
	rows := visibleRows(m.windowHeight)
	var b strings.Builder
	for i := m.listOffset; i < len(m.examples) && i < m.listOffset+rows; i++ {
		line := listLine(m.examples[i], i)
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(listWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func listLine(ex record.LabeledExample, index int) string {
	marker := positiveStyle.Render("+")
	if !ex.Label {
		marker = negativeStyle.Render("-")
	}
	name := ex.Metadata.FilePath
	if name == "" {
		name = "(no file)"
	}
	if len(name) > listWidth-10 {
		name = "…" + name[len(name)-(listWidth-11):]
	}
	return fmt.Sprintf("%s %4d %s", marker, index, name)
}

func renderDetail(ex record.LabeledExample) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Example") + "\n")
	writeLabeled(&b, "Label", labelText(ex.Label))
	writeLabeled(&b, "File", ex.Metadata.FilePath)
	writeLabeled(&b, "Commit", shortCommit(ex.Metadata.Commit))
	writeLabeled(&b, "Language", ex.Metadata.Language)
	if ex.Metadata.DegradationMethod != "" {
		writeLabeled(&b, "Degradation", ex.Metadata.DegradationMethod)
	}
	if ex.Metadata.CommitMessage != "" {
		writeLabeled(&b, "Message", ex.Metadata.CommitMessage)
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Prompt") + "\n")
	b.WriteString(ex.Prompt)
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Completion") + "\n")
	if ex.Completion == "" {
		b.WriteString(mutedStyle.Render("(empty)") + "\n")
	} else {
		b.WriteString(ex.Completion)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderBottomBar() string {
	stats := m.Stats()
	left := "↑/↓ select  tab pane  a accept  r reject  w write  q quit"
	if m.statusLine != "" {
		left += "  | " + m.statusLine
	}
	right := fmt.Sprintf("%d/%d  +%d -%d", m.selected+1, len(m.examples), stats.Positives, stats.Negatives)

	width := m.windowWidth - 2
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return barStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func writeLabeled(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(label+":"), value)
}

func labelText(label bool) string {
	if label {
		return positiveStyle.Render("positive")
	}
	return negativeStyle.Render("negative")
}

func shortCommit(commit string) string {
	if len(commit) > 10 {
		return commit[:10]
	}
	return commit
}

func visibleRows(windowHeight int) int {
	rows := windowHeight - 2
	if rows < 1 {
		return 1
	}
	return rows
}

func detailWidth(windowWidth int) int {
	width := windowWidth - listWidth - 3
	if width < 20 {
		return 20
	}
	return width
}
