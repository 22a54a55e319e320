package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricofeng/agent-recall/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestBootstrapIdempotent(t *testing.T) {
	dir := t.TempDir()
	_, err := NewFileStore(dir)
	require.NoError(t, err)
	_, err = NewFileStore(dir)
	require.NoError(t, err)

	for _, sub := range []string{"memory", "experience", "diaries"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestMemorySaveLoad(t *testing.T) {
	s := newTestStore(t)

	m := model.NewMemory("u1", "a1")
	m.Preferences.Custom["color"] = "blue"
	require.NoError(t, s.SaveMemory(m))

	doc, err := s.LoadMemory("u1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, m, model.MemoryFromDocument(doc))
}

func TestLoadMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.LoadMemory("nonexistent-user")
	require.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = s.LoadDiary("2026-01-01")
	require.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = s.LoadExperience("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestLoadMalformedFails(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.Root(), "memory", "1052_memory_bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.LoadMemory("bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestListExperiencesSkipsBadFiles(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveExperience(model.NewExperience("p1", nil)))
	require.NoError(t, s.SaveExperience(model.NewExperience("p2", nil)))

	expDir := filepath.Join(s.Root(), "experience")
	require.NoError(t, os.WriteFile(filepath.Join(expDir, "1052_exp_broken.json"), []byte("{{{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(expDir, "1052_exp_empty.json"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(expDir, "notes.txt"), []byte("skip me"), 0o644))

	docs, err := s.ListExperiences()
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestKeyValidation(t *testing.T) {
	s := newTestStore(t)

	for _, key := range []string{"", ".", "..", "a/b", `a\b`, "../escape"} {
		_, err := s.LoadMemory(key)
		assert.Error(t, err, "key %q", key)
	}

	m := model.NewMemory("../evil", "a1")
	assert.Error(t, s.SaveMemory(m))
}

func TestWriteIsPrettyAndLiteral(t *testing.T) {
	s := newTestStore(t)

	m := model.NewMemory("u1", "a1")
	m.Basic.Nickname = "小明 <owner>"
	require.NoError(t, s.SaveMemory(m))

	b, err := os.ReadFile(filepath.Join(s.Root(), "memory", "1052_memory_u1.json"))
	require.NoError(t, err)
	text := string(b)

	assert.Contains(t, text, "\n  \"user_id\"", "expected 2-space indent")
	assert.Contains(t, text, "小明 <owner>", "expected literal non-ASCII and angle brackets")
	assert.NotContains(t, text, `\u`)
}

func TestDiarySaveLoad(t *testing.T) {
	s := newTestStore(t)

	d := model.DiaryEntry{Date: "2026-08-29", TaskList: []string{"a"}, Summary: "ok"}
	require.NoError(t, s.SaveDiary(d))

	doc, err := s.LoadDiary("2026-08-29")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, d, model.DiaryEntryFromDocument(doc))

	names, err := os.ReadDir(filepath.Join(s.Root(), "diaries"))
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "1052_diary_2026-08-29.json", names[0].Name())
}

func TestExperienceFilename(t *testing.T) {
	s := newTestStore(t)

	e := model.NewExperience("p", nil)
	require.NoError(t, s.SaveExperience(e))

	_, err := os.Stat(filepath.Join(s.Root(), "experience", "1052_exp_"+e.ExpID+".json"))
	require.NoError(t, err)

	doc, err := s.LoadExperience(e.ExpID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, e, model.ExperienceFromDocument(doc))
}

func TestSearchText(t *testing.T) {
	doc := map[string]any{
		"problem":  "Disk FULL error",
		"tags":     []any{"disk", "linux"},
		"solution": []any{"clean /tmp"},
	}
	text := searchText(doc)
	assert.True(t, strings.Contains(text, "disk full error"))
	assert.True(t, strings.Contains(text, "linux"))
	assert.True(t, strings.Contains(text, "clean /tmp"))
}
