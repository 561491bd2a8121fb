// Package ipc defines the wire protocol between the daemon and its
// clients, and the posix dial/listen helpers, grounded on the teacher's
// pkg/ipc (same Unix-domain-socket dial/listen shape, generalized from a
// framed binary protocol to newline-delimited JSON per spec.md §4.7).
package ipc

import "github.com/Jeremis70/desktop-indexer/internal/entry"

// RequestCmd is the discriminant tag on the wire for a Request.
type RequestCmd string

const (
	CmdSearch   RequestCmd = "search"
	CmdWarmup   RequestCmd = "warmup"
	CmdList     RequestCmd = "list"
	CmdLaunch   RequestCmd = "launch"
	CmdStatus   RequestCmd = "status"
	CmdShutdown RequestCmd = "shutdown"
)

// EmptyMode mirrors search.EmptyMode on the wire, as a string so the
// protocol stays human-readable.
type EmptyMode string

const (
	EmptyModeRecency   EmptyMode = "recency"
	EmptyModeFrequency EmptyMode = "frequency"
)

// Request is the single envelope type for every client->server message.
// Only the fields relevant to Cmd are populated; unknown/irrelevant fields
// are ignored by the server.
type Request struct {
	Cmd RequestCmd `json:"cmd"`

	Roots []string `json:"roots,omitempty"`

	// Search fields.
	Query     string     `json:"query,omitempty"`
	Limit     *int       `json:"limit,omitempty"`
	EmptyMode *EmptyMode `json:"empty_mode,omitempty"`

	// Launch fields.
	DesktopID string  `json:"desktop_id,omitempty"`
	Action    *string `json:"action,omitempty"`
}

// ResponseType is the discriminant tag on the wire for a Response.
type ResponseType string

const (
	TypeOk      ResponseType = "ok"
	TypeError   ResponseType = "error"
	TypeEntries ResponseType = "entries"
	TypeStatus  ResponseType = "status"
)

// Response is the single envelope type for every server->client message.
type Response struct {
	Type ResponseType `json:"type"`

	Message string `json:"message,omitempty"`

	Entries []entry.PublicEntry `json:"entries,omitempty"`

	HasIndexCount int `json:"has_index_count,omitempty"`
}

// OkResponse builds a bare success response.
func OkResponse() Response { return Response{Type: TypeOk} }

// ErrorResponse builds a failure response carrying message.
func ErrorResponse(message string) Response {
	return Response{Type: TypeError, Message: message}
}

// EntriesResponse builds a response carrying a public entry list.
func EntriesResponse(entries []entry.PublicEntry) Response {
	return Response{Type: TypeEntries, Entries: entries}
}

// StatusResponse builds a response carrying the number of indexed
// root-sets.
func StatusResponse(count int) Response {
	return Response{Type: TypeStatus, HasIndexCount: count}
}
