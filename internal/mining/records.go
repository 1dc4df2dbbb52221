package mining

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jbonatakis/fimgen/internal/record"
)

// ReadRecords loads edit records from a JSONL file, one record per
// line. Blank lines are ignored.
func ReadRecords(path string) ([]record.EditRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file %s: %w", path, err)
	}
	defer f.Close()

	var records []record.EditRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec record.EditRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("parse records file %s line %d: %w", path, line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records file %s: %w", path, err)
	}
	return records, nil
}
