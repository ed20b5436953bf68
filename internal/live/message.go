// Package live keeps server-rendered navigation bars interactive over a
// WebSocket.
//
// Each connection owns one nav.NavBar instance. The client forwards
// actions; the session applies them and pushes the re-rendered fragment:
//
//	client → {"type":"event","action":"toggle"}
//	server → {"type":"render","html":"<style ...>...</style><nav ...>...</nav>"}
//	server → {"type":"docsearch","apiKey":"...","indexName":"...","inputSelector":"..."}
//
// The docsearch message is sent once, when the instance mounts.
package live

// Message types.
const (
	TypeEvent  = "event"
	TypeRender = "render"
	TypeError  = "error"
)

// Message is a client event or a server render.
type Message struct {
	Type   string `json:"type"`
	Action string `json:"action,omitempty"`
	HTML   string `json:"html,omitempty"`
	Error  string `json:"error,omitempty"`
}
