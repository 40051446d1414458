package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteReport serialises report as indented JSON and writes it to path
// with a crash-safe write-then-rename, the same pattern the pack uses
// for its own on-disk state (lock.go, cache_binary.go).
func WriteReport(path string, report Report) error {
	buf, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	buf = append(buf, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(buf)); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
