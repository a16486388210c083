package deepseek

import (
	"context"
	"errors"
	"strings"
)

const chatSystemPrompt = `You are a friendly task planning assistant. Help the user break their ideas and goals down into actionable todo items.

When the user describes a goal:
1. Understand what they need.
2. Ask guiding questions if something is unclear.
3. Break the goal down into concrete todo items.
4. Reply in a warm tone.

Keep your replies short and friendly.`

// FallbackReply is returned when the model's response lacks extractable text.
const FallbackReply = "Sorry, I couldn't understand your request."

// Chat sends the full prior conversation plus the latest user turn and
// returns the model's free-form reply. A reply without extractable text
// yields FallbackReply rather than an error; remote failures still fail.
func (c *Client) Chat(ctx context.Context, history []Message) (string, error) {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, Message{Role: RoleSystem, Content: chatSystemPrompt})
	messages = append(messages, history...)

	content, err := c.complete(ctx, messages, 0.8, 1000)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return FallbackReply, nil
		}
		return "", err
	}

	if strings.TrimSpace(content) == "" {
		return FallbackReply, nil
	}
	return content, nil
}
