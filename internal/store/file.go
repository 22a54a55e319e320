package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ricofeng/agent-recall/internal/model"
)

// FileStore implements Store with one pretty-printed UTF-8 JSON file per
// record under <root>/memory, <root>/experience and <root>/diaries.
type FileStore struct {
	root          string
	memoryDir     string
	experienceDir string
	diariesDir    string
}

// NewFileStore creates the collection directories under root (idempotently)
// and returns a store rooted there.
func NewFileStore(root string) (*FileStore, error) {
	s := &FileStore{
		root:          root,
		memoryDir:     filepath.Join(root, "memory"),
		experienceDir: filepath.Join(root, "experience"),
		diariesDir:    filepath.Join(root, "diaries"),
	}
	for _, dir := range []string{s.memoryDir, s.experienceDir, s.diariesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create collection dir: %w", err)
		}
	}
	return s, nil
}

// Root returns the storage root directory.
func (s *FileStore) Root() string {
	return s.root
}

// SaveMemory writes the memory document keyed by the aggregate's user id.
func (s *FileStore) SaveMemory(m *model.Memory) error {
	if err := validateKey(m.UserID); err != nil {
		return fmt.Errorf("save memory: %w", err)
	}
	return s.writeJSON(filepath.Join(s.memoryDir, memoryFilename(m.UserID)), m)
}

// LoadMemory reads the memory document for a user id. Returns nil, nil when
// no record exists.
func (s *FileStore) LoadMemory(userID string) (map[string]any, error) {
	if err := validateKey(userID); err != nil {
		return nil, fmt.Errorf("load memory: %w", err)
	}
	return s.readJSON(filepath.Join(s.memoryDir, memoryFilename(userID)))
}

// SaveExperience writes an experience document keyed by its exp id.
func (s *FileStore) SaveExperience(e *model.Experience) error {
	if err := validateKey(e.ExpID); err != nil {
		return fmt.Errorf("save experience: %w", err)
	}
	return s.writeJSON(filepath.Join(s.experienceDir, experienceFilename(e.ExpID)), e)
}

// LoadExperience reads a single experience document. Returns nil, nil when
// no record exists.
func (s *FileStore) LoadExperience(expID string) (map[string]any, error) {
	if err := validateKey(expID); err != nil {
		return nil, fmt.Errorf("load experience: %w", err)
	}
	return s.readJSON(filepath.Join(s.experienceDir, experienceFilename(expID)))
}

// ListExperiences enumerates every experience document in directory order.
// Empty and unparseable files are skipped; a bulk scan is best-effort.
func (s *FileStore) ListExperiences() ([]map[string]any, error) {
	entries, err := os.ReadDir(s.experienceDir)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	var docs []map[string]any
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(s.experienceDir, entry.Name()))
		if err != nil || len(bytes.TrimSpace(b)) == 0 {
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal(b, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// SaveDiary writes a diary document keyed by its date.
func (s *FileStore) SaveDiary(d model.DiaryEntry) error {
	if err := validateKey(d.Date); err != nil {
		return fmt.Errorf("save diary: %w", err)
	}
	return s.writeJSON(filepath.Join(s.diariesDir, diaryFilename(d.Date)), d)
}

// LoadDiary reads the diary document for a date. Returns nil, nil when no
// record exists.
func (s *FileStore) LoadDiary(date string) (map[string]any, error) {
	if err := validateKey(date); err != nil {
		return nil, fmt.Errorf("load diary: %w", err)
	}
	return s.readJSON(filepath.Join(s.diariesDir, diaryFilename(date)))
}

func memoryFilename(userID string) string {
	return fmt.Sprintf("1052_memory_%s.json", userID)
}

func experienceFilename(expID string) string {
	return fmt.Sprintf("1052_exp_%s.json", expID)
}

func diaryFilename(date string) string {
	return fmt.Sprintf("1052_diary_%s.json", date)
}

// writeJSON overwrites the whole file with 2-space-indented JSON. HTML
// escaping is off so non-ASCII text and angle brackets land literally.
func (s *FileStore) writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// readJSON returns nil, nil when the file does not exist. Malformed JSON is
// an error here: a single-key load is an explicit lookup and the caller
// needs to know.
func (s *FileStore) readJSON(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}
