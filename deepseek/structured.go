package deepseek

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/tmcli/tm/internal/ids"
	"github.com/tmcli/tm/todo"
)

const generateSystemPrompt = `You are a task planning assistant. The user will describe a goal, and you break it down into a list of concrete, actionable todo items.

Rules:
1. Each todo item must be a specific, actionable step.
2. Keep each item short, no more than a few words.
3. Order the items logically.
4. Return between 3 and 8 items.
5. Respond with only JSON, no extra explanation.

Example JSON format:
{
  "todos": [
    { "text": "first todo item" },
    { "text": "second todo item" }
  ]
}`

// GenerateTodoList asks the model to decompose goal into concrete steps and
// returns them as fresh task records. A response without a well-formed
// {"todos": [...]} object fails with a *ParseError, which callers treat as
// the signal to fall back to conversational mode.
func (c *Client) GenerateTodoList(ctx context.Context, goal string) ([]todo.Todo, error) {
	messages := []Message{
		{Role: RoleSystem, Content: generateSystemPrompt},
		{Role: RoleUser, Content: goal},
	}

	content, err := c.complete(ctx, messages, 0.7, 2000)
	if err != nil {
		return nil, err
	}

	raw, ok := extractJSONObject(content)
	if !ok {
		return nil, &ParseError{Reason: "no JSON object in response"}
	}

	var payload todoListPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &ParseError{Reason: "malformed todo list", Err: err}
	}
	if payload.Todos == nil {
		return nil, &ParseError{Reason: `response is missing the "todos" array`}
	}

	now := time.Now()
	todos := make([]todo.Todo, 0, len(payload.Todos))
	for _, item := range payload.Todos {
		// The model occasionally pads the list with blank entries; those
		// must never reach the task list.
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		todos = append(todos, todo.Todo{
			ID:          ids.New(),
			Text:        text,
			CreatedAt:   now,
			AIGenerated: true,
		})
	}
	if len(todos) == 0 {
		return nil, &ParseError{Reason: "todo list is empty"}
	}

	return todos, nil
}

// extractJSONObject returns the first brace-delimited substring of content.
// The model may wrap its JSON in explanatory prose.
func extractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return "", false
	}
	return content[start : end+1], true
}
