// Package assistant implements the conversational planning session.
//
// A session layers on the generation client: every user turn first attempts
// structured extraction of a todo list, falling back to free-form chat when
// the model's reply cannot be parsed. History is append-only for the life of
// the session and is never persisted.
package assistant

import "time"

// Role identifies the author of a session message.
type Role string

const (
	// RoleUser marks messages typed by the user.
	RoleUser Role = "user"

	// RoleAssistant marks replies from the model or synthesized summaries.
	RoleAssistant Role = "assistant"
)

// Message is one entry in the session history.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}
