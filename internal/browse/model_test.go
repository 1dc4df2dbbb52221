package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbonatakis/fimgen/internal/record"
)

func testExamples() []record.LabeledExample {
	return []record.LabeledExample{
		{
			ID:         "one",
			Prompt:     "prompt one",
			Completion: "completion one",
			Label:      true,
			Metadata:   record.LabeledMetadata{Metadata: record.Metadata{FilePath: "a.py", Language: "python"}},
		},
		{
			ID:         "two",
			Prompt:     "prompt two",
			Completion: "completion two",
			Label:      false,
			Metadata: record.LabeledMetadata{
				Metadata:          record.Metadata{FilePath: "b.py", Language: "python"},
				DegradationMethod: "incomplete",
			},
		},
		{
			ID:         "three",
			Prompt:     "prompt three",
			Completion: "completion three",
			Label:      true,
			Metadata:   record.LabeledMetadata{Metadata: record.Metadata{FilePath: "c.py", Language: "python"}},
		},
	}
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	panic("unknown key " + s)
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 32})
	return next.(Model)
}

func TestMoveSelection(t *testing.T) {
	m := sized(NewModel("x.jsonl", testExamples()))

	next, _ := m.Update(key("down"))
	m = next.(Model)
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}

	next, _ = m.Update(key("j"))
	m = next.(Model)
	next, _ = m.Update(key("j"))
	m = next.(Model)
	if m.selected != 2 {
		t.Fatalf("selected = %d, want clamp at 2", m.selected)
	}

	for i := 0; i < 5; i++ {
		next, _ = m.Update(key("up"))
		m = next.(Model)
	}
	if m.selected != 0 {
		t.Fatalf("selected = %d, want clamp at 0", m.selected)
	}
}

func TestRelabel(t *testing.T) {
	examples := testExamples()
	m := sized(NewModel("x.jsonl", examples))

	next, _ := m.Update(key("r"))
	m = next.(Model)
	if examples[0].Label {
		t.Fatal("reject should flip label to false")
	}
	if !m.dirty {
		t.Fatal("relabel should mark model dirty")
	}

	next, _ = m.Update(key("a"))
	m = next.(Model)
	if !examples[0].Label {
		t.Fatal("accept should flip label back to true")
	}
}

func TestRelabel_NoopKeepsClean(t *testing.T) {
	m := sized(NewModel("x.jsonl", testExamples()))

	next, _ := m.Update(key("a"))
	m = next.(Model)
	if m.dirty {
		t.Fatal("accepting an already-positive example should not dirty the model")
	}
}

func TestSaveWithoutChanges(t *testing.T) {
	m := sized(NewModel("x.jsonl", testExamples()))

	next, cmd := m.Update(key("w"))
	m = next.(Model)
	if cmd != nil {
		t.Fatal("save with no changes should not run a command")
	}
	if m.statusLine != "nothing to save" {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
}

func TestSaveAfterRelabel(t *testing.T) {
	m := sized(NewModel("x.jsonl", testExamples()))

	next, _ := m.Update(key("r"))
	m = next.(Model)
	next, cmd := m.Update(key("w"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("dirty save should return a command")
	}

	next, _ = m.Update(savedMsg{})
	m = next.(Model)
	if m.dirty {
		t.Fatal("successful save should clear dirty")
	}
	if m.statusLine != "saved" {
		t.Fatalf("statusLine = %q", m.statusLine)
	}
}

func TestTabTogglesPane(t *testing.T) {
	m := sized(NewModel("x.jsonl", testExamples()))
	if m.activePane != PaneList {
		t.Fatal("list pane should start active")
	}

	next, _ := m.Update(key("tab"))
	m = next.(Model)
	if m.activePane != PaneDetail {
		t.Fatal("tab should focus the detail pane")
	}

	next, _ = m.Update(key("down"))
	m = next.(Model)
	if m.selected != 0 {
		t.Fatal("scrolling the detail pane must not move the list selection")
	}
}

func TestQuit(t *testing.T) {
	m := sized(NewModel("x.jsonl", testExamples()))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("q produced %v, want quit", msg)
	}
}

func TestView(t *testing.T) {
	m := sized(NewModel("train.jsonl", testExamples()))
	out := m.View()

	for _, want := range []string{"a.py", "b.py", "c.py", "prompt one", "completion one"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_Empty(t *testing.T) {
	m := sized(NewModel("train.jsonl", nil))
	if m.View() == "" {
		t.Fatal("empty dataset should still render")
	}
}

func TestStats(t *testing.T) {
	m := NewModel("x.jsonl", testExamples())
	stats := m.Stats()
	if stats.Total != 3 || stats.Positives != 2 || stats.Negatives != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}
