package browse

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbonatakis/fimgen/internal/dataset"
	"github.com/jbonatakis/fimgen/internal/record"
)

type ActivePane int

const (
	PaneList ActivePane = iota
	PaneDetail
)

// Model is the record browser: a list of labeled examples on the left,
// the selected example's prompt/completion on the right. Relabeling
// flips Label in memory; 'w' persists the whole set back to the file.
type Model struct {
	path     string
	examples []record.LabeledExample

	selected     int
	listOffset   int
	activePane   ActivePane
	detail       viewport.Model
	detailReady  bool
	dirty        bool
	statusLine   string
	windowWidth  int
	windowHeight int
}

func NewModel(path string, examples []record.LabeledExample) Model {
	return Model{
		path:     path,
		examples: examples,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resizeDetail()
		m.refreshDetail()
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.statusLine = "save failed: " + msg.err.Error()
		} else {
			m.dirty = false
			m.statusLine = "saved"
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.activePane == PaneList {
			m.activePane = PaneDetail
		} else {
			m.activePane = PaneList
		}
		return m, nil
	case "up", "k":
		if m.activePane == PaneDetail {
			m.detail.LineUp(1)
			return m, nil
		}
		m.moveSelection(-1)
		return m, nil
	case "down", "j":
		if m.activePane == PaneDetail {
			m.detail.LineDown(1)
			return m, nil
		}
		m.moveSelection(1)
		return m, nil
	case "pgup":
		if m.activePane == PaneDetail {
			m.detail.HalfViewUp()
		} else {
			m.moveSelection(-visibleRows(m.windowHeight))
		}
		return m, nil
	case "pgdown":
		if m.activePane == PaneDetail {
			m.detail.HalfViewDown()
		} else {
			m.moveSelection(visibleRows(m.windowHeight))
		}
		return m, nil
	case "a":
		return m.relabel(true), nil
	case "r":
		return m.relabel(false), nil
	case "w":
		if !m.dirty {
			m.statusLine = "nothing to save"
			return m, nil
		}
		return m, saveCmd(m.path, m.examples)
	}
	return m, nil
}

func (m Model) relabel(label bool) Model {
	if len(m.examples) == 0 {
		return m
	}
	if m.examples[m.selected].Label != label {
		m.examples[m.selected].Label = label
		m.dirty = true
		m.statusLine = "unsaved changes"
	}
	return m
}

func (m *Model) moveSelection(delta int) {
	if len(m.examples) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.examples)-1 {
		m.selected = len(m.examples) - 1
	}
	rows := visibleRows(m.windowHeight)
	if m.selected < m.listOffset {
		m.listOffset = m.selected
	}
	if m.selected >= m.listOffset+rows {
		m.listOffset = m.selected - rows + 1
	}
	m.refreshDetail()
}

func (m *Model) resizeDetail() {
	width := detailWidth(m.windowWidth)
	height := visibleRows(m.windowHeight)
	if !m.detailReady {
		m.detail = viewport.New(width, height)
		m.detailReady = true
		return
	}
	m.detail.Width = width
	m.detail.Height = height
}

func (m *Model) refreshDetail() {
	if !m.detailReady || len(m.examples) == 0 {
		return
	}
	m.detail.SetContent(renderDetail(m.examples[m.selected]))
	m.detail.GotoTop()
}

// Stats recomputes the dataset summary over the current labels.
func (m Model) Stats() dataset.Stats {
	return dataset.Summarize(m.examples)
}
