package browse

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbonatakis/fimgen/internal/dataset"
	"github.com/jbonatakis/fimgen/internal/record"
)

// Start opens the browser over a labeled-example JSONL file.
func Start(path string) error {
	examples, err := dataset.ReadLabeled(path)
	if err != nil {
		return err
	}
	program := tea.NewProgram(NewModel(path, examples), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type savedMsg struct {
	err error
}

// saveCmd writes relabeled examples back to the source file off the
// update loop.
func saveCmd(path string, examples []record.LabeledExample) tea.Cmd {
	snapshot := append([]record.LabeledExample(nil), examples...)
	return func() tea.Msg {
		return savedMsg{err: dataset.WriteJSONL(path, snapshot)}
	}
}
