package model

// Scene describes the environment an experience happened in. It is stored
// inside the experience document, never on its own.
type Scene struct {
	Device string `json:"device"`
	System string `json:"system"`
	Env    string `json:"env"`
}

// NewScene returns a Scene with defaults.
func NewScene() Scene {
	return Scene{
		Device: "pc",
		System: "unknown",
		Env:    "default",
	}
}

// SceneFromDocument reconstructs a Scene from a generic document.
func SceneFromDocument(doc map[string]any) Scene {
	def := NewScene()
	return Scene{
		Device: docString(doc, "device", def.Device),
		System: docString(doc, "system", def.System),
		Env:    docString(doc, "env", def.Env),
	}
}

// Document renders the Scene as a generic document.
func (s Scene) Document() map[string]any {
	return map[string]any{
		"device": s.Device,
		"system": s.System,
		"env":    s.Env,
	}
}

// Experience is an immutable record of a past problem and its solution.
// ExpID is generated at creation and never changes; no update operation
// exists.
type Experience struct {
	ExpID        string   `json:"exp_id"`
	Protocol     string   `json:"protocol"`
	Type         string   `json:"type"`
	Problem      string   `json:"problem"`
	Solution     []string `json:"solution"`
	Scene        Scene    `json:"scene"`
	ErrorRaw     string   `json:"error_raw"`
	Cause        string   `json:"cause"`
	VerifyStatus bool     `json:"verify_status"`
	Tags         []string `json:"tags"`
	Level        string   `json:"level"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// NewExperience returns an Experience with a fresh ExpID and defaults for
// everything not supplied.
func NewExperience(problem string, solution []string) *Experience {
	now := Timestamp()
	if solution == nil {
		solution = []string{}
	}
	return &Experience{
		ExpID:     NewID(),
		Protocol:  Protocol,
		Type:      TypeExperience,
		Problem:   problem,
		Solution:  solution,
		Scene:     NewScene(),
		Tags:      []string{},
		Level:     "normal",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ExperienceFromDocument reconstructs an Experience from a generic document.
func ExperienceFromDocument(doc map[string]any) *Experience {
	e := NewExperience(docString(doc, "problem", ""), docStrings(doc, "solution"))
	e.ExpID = docString(doc, "exp_id", e.ExpID)
	e.Protocol = docString(doc, "protocol", Protocol)
	e.Type = docString(doc, "type", TypeExperience)
	e.ErrorRaw = docString(doc, "error_raw", "")
	e.Cause = docString(doc, "cause", "")
	e.VerifyStatus = docBool(doc, "verify_status", false)
	e.Tags = docStrings(doc, "tags")
	e.Level = docString(doc, "level", "normal")
	e.CreatedAt = docString(doc, "created_at", e.CreatedAt)
	e.UpdatedAt = docString(doc, "updated_at", e.UpdatedAt)
	if scene, ok := docMap(doc, "scene"); ok {
		e.Scene = SceneFromDocument(scene)
	}
	return e
}

// Document renders the Experience as a generic document.
func (e *Experience) Document() map[string]any {
	solution := make([]string, len(e.Solution))
	copy(solution, e.Solution)
	tags := make([]string, len(e.Tags))
	copy(tags, e.Tags)
	return map[string]any{
		"exp_id":        e.ExpID,
		"protocol":      e.Protocol,
		"type":          e.Type,
		"problem":       e.Problem,
		"solution":      solution,
		"scene":         e.Scene.Document(),
		"error_raw":     e.ErrorRaw,
		"cause":         e.Cause,
		"verify_status": e.VerifyStatus,
		"tags":          tags,
		"level":         e.Level,
		"created_at":    e.CreatedAt,
		"updated_at":    e.UpdatedAt,
	}
}
