package model

// BasicInfo holds the owner's identity facts.
type BasicInfo struct {
	Nickname      string `json:"nickname"`
	FirstBootTime string `json:"first_boot_time"`
	CurrentDevice string `json:"current_device"`
}

// NewBasicInfo returns a BasicInfo with defaults. FirstBootTime is set once
// here and never refreshed.
func NewBasicInfo() BasicInfo {
	return BasicInfo{
		Nickname:      "Owner",
		FirstBootTime: Timestamp(),
		CurrentDevice: "unknown",
	}
}

// BasicInfoFromDocument reconstructs a BasicInfo from a generic document.
func BasicInfoFromDocument(doc map[string]any) BasicInfo {
	def := NewBasicInfo()
	return BasicInfo{
		Nickname:      docString(doc, "nickname", def.Nickname),
		FirstBootTime: docString(doc, "first_boot_time", def.FirstBootTime),
		CurrentDevice: docString(doc, "current_device", def.CurrentDevice),
	}
}

// Document renders the BasicInfo as a generic document.
func (b BasicInfo) Document() map[string]any {
	return map[string]any{
		"nickname":        b.Nickname,
		"first_boot_time": b.FirstBootTime,
		"current_device":  b.CurrentDevice,
	}
}

// Preferences holds how the owner wants the agent to talk, plus an open
// custom bag for keys outside the fixed schema.
type Preferences struct {
	TalkStyle   string         `json:"talk_style"`
	CommonWords []string       `json:"common_words"`
	Custom      map[string]any `json:"custom"`
}

// NewPreferences returns Preferences with defaults.
func NewPreferences() Preferences {
	return Preferences{
		TalkStyle:   "natural",
		CommonWords: []string{},
		Custom:      map[string]any{},
	}
}

// PreferencesFromDocument reconstructs Preferences from a generic document.
func PreferencesFromDocument(doc map[string]any) Preferences {
	p := NewPreferences()
	p.TalkStyle = docString(doc, "talk_style", p.TalkStyle)
	p.CommonWords = docStrings(doc, "common_words")
	if custom, ok := docMap(doc, "custom"); ok {
		for k, v := range custom {
			p.Custom[k] = v
		}
	}
	return p
}

// Document renders the Preferences as a generic document.
func (p Preferences) Document() map[string]any {
	custom := make(map[string]any, len(p.Custom))
	for k, v := range p.Custom {
		custom[k] = v
	}
	return map[string]any{
		"talk_style":   p.TalkStyle,
		"common_words": p.CommonWords,
		"custom":       custom,
	}
}

// Permissions are independent grants, all false until explicitly granted.
// They are stored data, not enforced policy.
type Permissions struct {
	ControlPhone bool `json:"control_phone"`
	ControlPC    bool `json:"control_pc"`
	AccessCamera bool `json:"access_camera"`
	AccessFiles  bool `json:"access_files"`
	AllowUpload  bool `json:"allow_upload"`
}

// PermissionNames lists the permission fields addressable by name.
var PermissionNames = []string{
	"control_phone",
	"control_pc",
	"access_camera",
	"access_files",
	"allow_upload",
}

// PermissionsFromDocument reconstructs Permissions from a generic document.
func PermissionsFromDocument(doc map[string]any) Permissions {
	return Permissions{
		ControlPhone: docBool(doc, "control_phone", false),
		ControlPC:    docBool(doc, "control_pc", false),
		AccessCamera: docBool(doc, "access_camera", false),
		AccessFiles:  docBool(doc, "access_files", false),
		AllowUpload:  docBool(doc, "allow_upload", false),
	}
}

// Document renders the Permissions as a generic document.
func (p Permissions) Document() map[string]any {
	return map[string]any{
		"control_phone": p.ControlPhone,
		"control_pc":    p.ControlPC,
		"access_camera": p.AccessCamera,
		"access_files":  p.AccessFiles,
		"allow_upload":  p.AllowUpload,
	}
}

// Get returns the named permission grant.
func (p Permissions) Get(name string) (bool, bool) {
	switch name {
	case "control_phone":
		return p.ControlPhone, true
	case "control_pc":
		return p.ControlPC, true
	case "access_camera":
		return p.AccessCamera, true
	case "access_files":
		return p.AccessFiles, true
	case "allow_upload":
		return p.AllowUpload, true
	}
	return false, false
}

// Set updates the named permission grant. Returns false for unknown names.
func (p *Permissions) Set(name string, granted bool) bool {
	switch name {
	case "control_phone":
		p.ControlPhone = granted
	case "control_pc":
		p.ControlPC = granted
	case "access_camera":
		p.AccessCamera = granted
	case "access_files":
		p.AccessFiles = granted
	case "allow_upload":
		p.AllowUpload = granted
	default:
		return false
	}
	return true
}

// Memory is the root per-user aggregate. It is addressed on disk by UserID;
// two Memory values sharing a UserID overwrite each other. DailyDiaries is a
// denormalized cache of the per-date diary files and is kept in sync by the
// session on every diary write.
type Memory struct {
	UserID       string       `json:"user_id"`
	AgentID      string       `json:"agent_id"`
	Protocol     string       `json:"protocol"`
	Type         string       `json:"type"`
	Basic        BasicInfo    `json:"basic"`
	Preferences  Preferences  `json:"preferences"`
	DailyDiaries []DiaryEntry `json:"daily_diaries"`
	Permissions  Permissions  `json:"permissions"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// NewMemory returns a fresh Memory for the given identifiers with all
// sub-entities at their defaults.
func NewMemory(userID, agentID string) *Memory {
	now := Timestamp()
	return &Memory{
		UserID:       userID,
		AgentID:      agentID,
		Protocol:     Protocol,
		Type:         TypeMemory,
		Basic:        NewBasicInfo(),
		Preferences:  NewPreferences(),
		DailyDiaries: []DiaryEntry{},
		Permissions:  Permissions{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MemoryFromDocument reconstructs a Memory from a generic document,
// recursively typing the nested entities.
func MemoryFromDocument(doc map[string]any) *Memory {
	m := NewMemory(docString(doc, "user_id", ""), docString(doc, "agent_id", ""))
	m.Protocol = docString(doc, "protocol", Protocol)
	m.Type = docString(doc, "type", TypeMemory)
	m.CreatedAt = docString(doc, "created_at", m.CreatedAt)
	m.UpdatedAt = docString(doc, "updated_at", m.UpdatedAt)
	if basic, ok := docMap(doc, "basic"); ok {
		m.Basic = BasicInfoFromDocument(basic)
	}
	if prefs, ok := docMap(doc, "preferences"); ok {
		m.Preferences = PreferencesFromDocument(prefs)
	}
	if perms, ok := docMap(doc, "permissions"); ok {
		m.Permissions = PermissionsFromDocument(perms)
	}
	if raw, ok := doc["daily_diaries"].([]any); ok {
		for _, e := range raw {
			if entry, ok := e.(map[string]any); ok {
				m.DailyDiaries = append(m.DailyDiaries, DiaryEntryFromDocument(entry))
			}
		}
	}
	return m
}

// Document renders the full aggregate as a plain nested document.
func (m *Memory) Document() map[string]any {
	diaries := make([]any, len(m.DailyDiaries))
	for i, d := range m.DailyDiaries {
		diaries[i] = d.Document()
	}
	return map[string]any{
		"user_id":       m.UserID,
		"agent_id":      m.AgentID,
		"protocol":      m.Protocol,
		"type":          m.Type,
		"basic":         m.Basic.Document(),
		"preferences":   m.Preferences.Document(),
		"daily_diaries": diaries,
		"permissions":   m.Permissions.Document(),
		"created_at":    m.CreatedAt,
		"updated_at":    m.UpdatedAt,
	}
}
