package cli

import "github.com/jbonatakis/fimgen/internal/browse"

func runBrowse(path string) error {
	return browse.Start(path)
}
