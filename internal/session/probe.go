package session

import (
	"runtime"

	"github.com/ricofeng/agent-recall/internal/model"
)

// SceneProbe supplies the environment description attached to a new
// experience. The session treats the values as opaque strings.
type SceneProbe interface {
	Probe() model.Scene
}

// HostProbe describes the process's own host.
type HostProbe struct{}

// Probe reports the local machine as a pc running this client.
func (HostProbe) Probe() model.Scene {
	return model.Scene{
		Device: "pc",
		System: runtime.GOOS,
		Env:    "agent-recall",
	}
}
