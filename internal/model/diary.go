package model

// DiaryEntry is the per-calendar-date log of tasks and a free-text summary.
// One entry exists per date; tasks append within the day, the summary is
// last-write-wins. Entries are never deleted.
type DiaryEntry struct {
	Date     string   `json:"date"`
	TaskList []string `json:"task_list"`
	Summary  string   `json:"summary"`
}

// NewDiaryEntry returns an empty entry for the given date.
func NewDiaryEntry(date string) DiaryEntry {
	return DiaryEntry{
		Date:     date,
		TaskList: []string{},
		Summary:  "",
	}
}

// DiaryEntryFromDocument reconstructs a DiaryEntry from a generic document.
func DiaryEntryFromDocument(doc map[string]any) DiaryEntry {
	return DiaryEntry{
		Date:     docString(doc, "date", ""),
		TaskList: docStrings(doc, "task_list"),
		Summary:  docString(doc, "summary", ""),
	}
}

// Document renders the DiaryEntry as a generic document.
func (d DiaryEntry) Document() map[string]any {
	tasks := make([]string, len(d.TaskList))
	copy(tasks, d.TaskList)
	return map[string]any{
		"date":      d.Date,
		"task_list": tasks,
		"summary":   d.Summary,
	}
}
