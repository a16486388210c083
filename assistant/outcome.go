package assistant

import "github.com/tmcli/tm/todo"

// OutcomeKind identifies how a submitted turn resolved.
type OutcomeKind int

const (
	// OutcomeTodos means structured extraction succeeded and the returned
	// todos were inserted into the list.
	OutcomeTodos OutcomeKind = iota

	// OutcomeReply means extraction failed and the conversational fallback
	// produced a reply.
	OutcomeReply

	// OutcomeError means the turn failed; the error was appended to the
	// session history as an assistant message.
	OutcomeError
)

// Outcome is the explicit result of one submitted turn. Exactly one of
// Todos, Reply, or Err is meaningful, selected by Kind.
type Outcome struct {
	Kind  OutcomeKind
	Todos []todo.Todo
	Reply string
	Err   error
}
