// Package session is the stateful façade over one user's memory: it loads
// or creates the Memory aggregate at open time and keeps the in-memory copy
// and the on-disk records consistent through explicit re-saves.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ricofeng/agent-recall/internal/model"
	"github.com/ricofeng/agent-recall/internal/store"
)

// Params configures a session.
type Params struct {
	UserID  string
	AgentID string
	Store   store.Store

	// Probe supplies the Scene for new experiences. Defaults to HostProbe.
	Probe SceneProbe

	// Logger receives debug events on mutations. Defaults to slog.Default().
	Logger *slog.Logger

	// RetentionDays caps how many days of diary entries the in-memory
	// daily_diaries cache keeps. Zero means unlimited. The per-date files
	// are the source of truth and are never pruned.
	RetentionDays int
}

// Session owns one user's Memory aggregate for the life of the process.
// It assumes it is the only writer for that user id.
type Session struct {
	store         store.Store
	memory        *model.Memory
	probe         SceneProbe
	logger        *slog.Logger
	retentionDays int
}

// Open loads the user's Memory from the store, or creates a fresh one with
// default sub-entities when none exists. This is the sole entry point.
func Open(p Params) (*Session, error) {
	if p.UserID == "" {
		return nil, fmt.Errorf("open session: user id is required")
	}
	if p.Store == nil {
		return nil, fmt.Errorf("open session: store is required")
	}
	if p.AgentID == "" {
		p.AgentID = "agent_001"
	}
	if p.Probe == nil {
		p.Probe = HostProbe{}
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}

	s := &Session{
		store:         p.Store,
		probe:         p.Probe,
		logger:        p.Logger,
		retentionDays: p.RetentionDays,
	}

	doc, err := p.Store.LoadMemory(p.UserID)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	if doc != nil {
		s.memory = model.MemoryFromDocument(doc)
		// The document's own identifiers win; backfill only when absent.
		if s.memory.UserID == "" {
			s.memory.UserID = p.UserID
		}
		if s.memory.AgentID == "" {
			s.memory.AgentID = p.AgentID
		}
		s.logger.Debug("loaded memory", "user", p.UserID, "diaries", len(s.memory.DailyDiaries))
	} else {
		s.memory = model.NewMemory(p.UserID, p.AgentID)
		s.logger.Debug("created memory", "user", p.UserID, "agent", p.AgentID)
	}
	return s, nil
}

// Memory exposes the in-memory aggregate.
func (s *Session) Memory() *model.Memory {
	return s.memory
}

// Save refreshes updated_at and writes the whole aggregate to the store.
func (s *Session) Save() error {
	s.memory.UpdatedAt = model.Timestamp()
	if err := s.store.SaveMemory(s.memory); err != nil {
		return fmt.Errorf("save memory: %w", err)
	}
	s.logger.Debug("saved memory", "user", s.memory.UserID)
	return nil
}

// SetPreference writes a declared Preferences field when key names one,
// otherwise the value lands in the custom bag. Every call saves the whole
// Memory; preference writes are never batched.
func (s *Session) SetPreference(key string, value any) error {
	prefs := &s.memory.Preferences
	switch key {
	case "talk_style":
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("set preference: talk_style wants a string, got %T", value)
		}
		prefs.TalkStyle = v
	case "common_words":
		words, err := stringList(value)
		if err != nil {
			return fmt.Errorf("set preference: common_words: %w", err)
		}
		prefs.CommonWords = words
	case "custom":
		m, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("set preference: custom wants a mapping, got %T", value)
		}
		prefs.Custom = m
	default:
		prefs.Custom[key] = value
	}
	return s.Save()
}

// GetPreference looks a preference up, declared fields first, then the
// custom bag. The second result is false when neither holds the key.
func (s *Session) GetPreference(key string) (any, bool) {
	prefs := s.memory.Preferences
	switch key {
	case "talk_style":
		return prefs.TalkStyle, true
	case "common_words":
		return prefs.CommonWords, true
	case "custom":
		return prefs.Custom, true
	}
	v, ok := prefs.Custom[key]
	return v, ok
}

// ExperienceParams holds the caller-supplied fields of a new experience.
type ExperienceParams struct {
	Problem  string
	Solution []string
	Tags     []string
	ErrorRaw string
	Cause    string
	Level    string
	Verified bool
}

// AddExperience stores a new immutable experience record and returns its
// generated exp id. Experiences live in their own collection and are not
// cached on the Memory aggregate.
func (s *Session) AddExperience(p ExperienceParams) (string, error) {
	e := model.NewExperience(p.Problem, p.Solution)
	if p.Tags != nil {
		e.Tags = p.Tags
	}
	if p.Level != "" {
		e.Level = p.Level
	}
	e.ErrorRaw = p.ErrorRaw
	e.Cause = p.Cause
	e.VerifyStatus = p.Verified
	e.Scene = s.probe.Probe()

	if err := s.store.SaveExperience(e); err != nil {
		return "", fmt.Errorf("add experience: %w", err)
	}
	s.logger.Debug("added experience", "exp_id", e.ExpID, "level", e.Level)
	return e.ExpID, nil
}

// GetExperience reads one experience document. Returns nil, nil when no
// record exists.
func (s *Session) GetExperience(expID string) (map[string]any, error) {
	return s.store.LoadExperience(expID)
}

// LogDiary upserts today's diary entry: a non-empty task appends to the
// day's task list, a non-empty summary overwrites the day's summary. The
// per-date file is written first, then the denormalized copy inside the
// Memory aggregate is synchronized and the whole Memory saved.
func (s *Session) LogDiary(task, summary string) error {
	today := model.Today()
	doc, err := s.store.LoadDiary(today)
	if err != nil {
		return fmt.Errorf("log diary: %w", err)
	}
	entry := model.NewDiaryEntry(today)
	if doc != nil {
		entry = model.DiaryEntryFromDocument(doc)
	}

	if task != "" {
		entry.TaskList = append(entry.TaskList, task)
	}
	if summary != "" {
		entry.Summary = summary
	}

	if err := s.store.SaveDiary(entry); err != nil {
		return fmt.Errorf("log diary: %w", err)
	}
	s.syncDiary(entry)
	s.logger.Debug("logged diary", "date", today, "tasks", len(entry.TaskList))
	return s.Save()
}

// syncDiary replaces the aggregate's cached entry for the same date in
// place, or appends when the date is new, then applies the retention cap.
func (s *Session) syncDiary(entry model.DiaryEntry) {
	found := false
	for i := range s.memory.DailyDiaries {
		if s.memory.DailyDiaries[i].Date == entry.Date {
			s.memory.DailyDiaries[i].TaskList = entry.TaskList
			s.memory.DailyDiaries[i].Summary = entry.Summary
			found = true
			break
		}
	}
	if !found {
		s.memory.DailyDiaries = append(s.memory.DailyDiaries, entry)
	}

	if s.retentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -(s.retentionDays - 1)).Format("2006-01-02")
		kept := s.memory.DailyDiaries[:0]
		for _, d := range s.memory.DailyDiaries {
			if d.Date >= cutoff {
				kept = append(kept, d)
			}
		}
		s.memory.DailyDiaries = kept
	}
}

// SetPermission flips one named permission grant and saves the Memory.
func (s *Session) SetPermission(name string, granted bool) error {
	if !s.memory.Permissions.Set(name, granted) {
		return fmt.Errorf("set permission: unknown permission %q", name)
	}
	s.logger.Debug("set permission", "name", name, "granted", granted)
	return s.Save()
}

// GetPermission reads one named permission grant. The second result is
// false for unknown names.
func (s *Session) GetPermission(name string) (bool, bool) {
	return s.memory.Permissions.Get(name)
}

// Snapshot renders the full aggregate as a plain nested document.
func (s *Session) Snapshot() map[string]any {
	return s.memory.Document()
}

func stringList(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("wants strings, got %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("wants a string list, got %T", value)
}
