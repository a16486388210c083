package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tmcli/tm/deepseek"
	"github.com/tmcli/tm/internal/ids"
	"github.com/tmcli/tm/todo"
)

var (
	// ErrBusy indicates a request is already in flight for this session.
	ErrBusy = errors.New("a request is already in flight")

	// ErrEmptyInput indicates a blank user turn, rejected before any
	// history or network activity.
	ErrEmptyInput = errors.New("input cannot be empty")
)

// Generator produces todos or replies from the remote model.
// *deepseek.Client satisfies it.
type Generator interface {
	GenerateTodoList(ctx context.Context, goal string) ([]todo.Todo, error)
	Chat(ctx context.Context, history []deepseek.Message) (string, error)
}

// Session holds one conversation with the planning assistant.
type Session struct {
	generator Generator
	store     *todo.Store

	mu       sync.Mutex
	messages []Message
	pending  bool
}

// NewSession creates a session that inserts generated todos into store.
func NewSession(generator Generator, store *todo.Store) *Session {
	return &Session{generator: generator, store: store}
}

// Messages returns a copy of the session history in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// Pending reports whether a request is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Submit runs one user turn through the two-step pipeline: structured
// extraction first, conversational fallback on parse failure, error message
// on anything else. Only one turn may be in flight at a time; concurrent
// submissions fail with ErrBusy without touching the history.
func (s *Session) Submit(ctx context.Context, input string) (Outcome, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Outcome{}, ErrEmptyInput
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return Outcome{}, ErrBusy
	}
	s.pending = true
	// The chat fallback sends the history as it stood before this turn,
	// plus the new user turn; synthesized summaries from this submit are
	// never included.
	history := chatHistory(s.messages)
	s.appendLocked(RoleUser, input)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	todos, err := s.generator.GenerateTodoList(ctx, input)
	if err == nil {
		s.store.BulkInsert(todos)
		s.append(RoleAssistant, summarizeTodos(todos))
		return Outcome{Kind: OutcomeTodos, Todos: todos}, nil
	}

	var parseErr *deepseek.ParseError
	if errors.As(err, &parseErr) {
		turns := append(history, deepseek.Message{Role: deepseek.RoleUser, Content: input})
		reply, chatErr := s.generator.Chat(ctx, turns)
		if chatErr == nil {
			s.append(RoleAssistant, reply)
			return Outcome{Kind: OutcomeReply, Reply: reply}, nil
		}
		err = chatErr
	}

	s.append(RoleAssistant, fmt.Sprintf("Sorry, something went wrong: %v", err))
	return Outcome{Kind: OutcomeError, Err: err}, nil
}

func (s *Session) append(role Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(role, content)
}

func (s *Session) appendLocked(role Role, content string) {
	s.messages = append(s.messages, Message{
		ID:        ids.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// chatHistory strips messages down to the role+content pairs the endpoint
// accepts.
func chatHistory(messages []Message) []deepseek.Message {
	history := make([]deepseek.Message, 0, len(messages))
	for _, msg := range messages {
		history = append(history, deepseek.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return history
}

// summarizeTodos builds the assistant message reporting an inserted list.
func summarizeTodos(todos []todo.Todo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Added %d todos to your list:\n", len(todos))
	for i, td := range todos {
		fmt.Fprintf(&b, "\n%d. %s", i+1, td.Text)
	}
	return b.String()
}
