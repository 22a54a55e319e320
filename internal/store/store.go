// Package store persists protocol 1052 records as one JSON file per record
// under three collection directories. It assumes a single writer per user id:
// there is no file locking and no atomic replace, so concurrent processes
// writing the same record lose updates at file-write granularity.
package store

import (
	"fmt"
	"strings"

	"github.com/ricofeng/agent-recall/internal/model"
)

// Store defines the record persistence interface. Load methods return a nil
// document with a nil error when no record exists; absence is a normal
// outcome, not a fault.
type Store interface {
	// SaveMemory writes the full memory document keyed by user id.
	SaveMemory(m *model.Memory) error

	// LoadMemory reads the memory document for a user id.
	LoadMemory(userID string) (map[string]any, error)

	// SaveExperience writes an experience document keyed by exp id.
	SaveExperience(e *model.Experience) error

	// LoadExperience reads a single experience document.
	LoadExperience(expID string) (map[string]any, error)

	// ListExperiences enumerates every experience document, skipping files
	// that are empty or fail to parse.
	ListExperiences() ([]map[string]any, error)

	// SaveDiary writes a diary document keyed by date (YYYY-MM-DD).
	SaveDiary(d model.DiaryEntry) error

	// LoadDiary reads the diary document for a date.
	LoadDiary(date string) (map[string]any, error)
}

// validateKey rejects keys that cannot safely form a filename. Record keys
// (user ids, exp ids, dates) are embedded in paths verbatim, so path
// separators and traversal are refused rather than escaped.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("record key is empty")
	}
	if key == "." || key == ".." {
		return fmt.Errorf("record key %q is not allowed", key)
	}
	if strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return fmt.Errorf("record key %q contains path characters", key)
	}
	return nil
}
