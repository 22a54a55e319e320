package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	basic := BasicInfoFromDocument(map[string]any{})
	assert.Equal(t, "Owner", basic.Nickname)
	assert.Equal(t, "unknown", basic.CurrentDevice)
	assert.NotEmpty(t, basic.FirstBootTime)

	prefs := PreferencesFromDocument(map[string]any{})
	assert.Equal(t, "natural", prefs.TalkStyle)
	assert.Empty(t, prefs.CommonWords)
	assert.Empty(t, prefs.Custom)

	perms := PermissionsFromDocument(map[string]any{})
	assert.Equal(t, Permissions{}, perms)

	scene := SceneFromDocument(map[string]any{})
	assert.Equal(t, Scene{Device: "pc", System: "unknown", Env: "default"}, scene)
}

func TestNewExperience(t *testing.T) {
	e := NewExperience("disk full", []string{"clean /tmp"})
	assert.NotEmpty(t, e.ExpID)
	assert.Equal(t, Protocol, e.Protocol)
	assert.Equal(t, TypeExperience, e.Type)
	assert.Equal(t, "normal", e.Level)
	assert.False(t, e.VerifyStatus)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)

	e2 := NewExperience("disk full", []string{"clean /tmp"})
	assert.NotEqual(t, e.ExpID, e2.ExpID)
}

func TestUnknownKeysDropped(t *testing.T) {
	doc := map[string]any{
		"nickname": "Sam",
		"foo":      float64(1),
	}
	with := BasicInfoFromDocument(doc)
	delete(doc, "foo")
	without := BasicInfoFromDocument(doc)

	assert.Equal(t, without.Nickname, with.Nickname)
	assert.Equal(t, without.CurrentDevice, with.CurrentDevice)
}

func TestMismatchedShapesFallBackToDefaults(t *testing.T) {
	prefs := PreferencesFromDocument(map[string]any{
		"talk_style":   float64(3),
		"common_words": "not a list",
		"custom":       "not a map",
	})
	assert.Equal(t, "natural", prefs.TalkStyle)
	assert.Empty(t, prefs.CommonWords)
	assert.Empty(t, prefs.Custom)

	perms := PermissionsFromDocument(map[string]any{"control_pc": "yes"})
	assert.False(t, perms.ControlPC)
}

func TestMemoryFromDocumentNested(t *testing.T) {
	doc := map[string]any{
		"user_id":  "u1",
		"agent_id": "a1",
		"basic":    map[string]any{"nickname": "老板", "extra": true},
		"preferences": map[string]any{
			"talk_style": "strict",
			"custom":     map[string]any{"color": "blue"},
		},
		"permissions": map[string]any{"access_files": true},
		"daily_diaries": []any{
			map[string]any{"date": "2026-08-28", "task_list": []any{"ship it"}},
			"not a diary",
		},
	}

	m := MemoryFromDocument(doc)
	assert.Equal(t, "u1", m.UserID)
	assert.Equal(t, "a1", m.AgentID)
	assert.Equal(t, "老板", m.Basic.Nickname)
	assert.Equal(t, "strict", m.Preferences.TalkStyle)
	assert.Equal(t, "blue", m.Preferences.Custom["color"])
	assert.True(t, m.Permissions.AccessFiles)
	require.Len(t, m.DailyDiaries, 1)
	assert.Equal(t, "2026-08-28", m.DailyDiaries[0].Date)
	assert.Equal(t, []string{"ship it"}, m.DailyDiaries[0].TaskList)
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory("u1", "a1")
	m.Basic.Nickname = "Sam"
	m.Preferences.TalkStyle = "concise"
	m.Preferences.CommonWords = []string{"ship", "it"}
	m.Preferences.Custom["color"] = "blue"
	m.Permissions.AllowUpload = true
	m.DailyDiaries = append(m.DailyDiaries, DiaryEntry{
		Date:     "2026-08-28",
		TaskList: []string{"a", "b"},
		Summary:  "done",
	})

	// Through the serialized form, as a store load would see it.
	b, err := json.Marshal(m)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))

	got := MemoryFromDocument(doc)
	assert.Equal(t, m, got)

	// And through the generic document form used by snapshots.
	assert.Equal(t, m, MemoryFromDocument(m.Document()))
}

func TestExperienceRoundTrip(t *testing.T) {
	e := NewExperience("kernel panic", []string{"reboot", "update driver"})
	e.Tags = []string{"linux", "kernel"}
	e.ErrorRaw = "panic: unable to mount root fs"
	e.Cause = "missing initrd"
	e.VerifyStatus = true
	e.Level = "critical"
	e.Scene = Scene{Device: "pc", System: "linux", Env: "agent-recall"}

	b, err := json.Marshal(e)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))

	assert.Equal(t, e, ExperienceFromDocument(doc))
	assert.Equal(t, e, ExperienceFromDocument(e.Document()))
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp()
	assert.Contains(t, ts, "T")

	today := Today()
	require.Len(t, today, 10)
	assert.Equal(t, 2, strings.Count(today, "-"))
}
