package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tmcli/tm/assistant"
	"github.com/tmcli/tm/deepseek"
	"github.com/tmcli/tm/internal/chatui"
	"github.com/tmcli/tm/internal/markdown"
)

var assistCmd = &cobra.Command{
	Use:   "assist [goal]",
	Short: "Ask the assistant to turn a goal into todos",
	Long: `Ask the planning assistant to break a goal into todos.

With a goal argument, runs a single turn and prints the result. Without
arguments, opens an interactive chat panel.

Requires a DeepSeek API key, set via DEEPSEEK_API_KEY or the deepseek
section of the config file.`,
	RunE: runAssist,
}

func init() {
	rootCmd.AddCommand(assistCmd)
}

func runAssist(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	client := deepseek.NewClient(deepseek.Config{
		APIKey:  cfg.DeepSeek.APIKey,
		BaseURL: cfg.DeepSeek.BaseURL,
		Model:   cfg.DeepSeek.Model,
	})
	if !client.Configured() {
		return fmt.Errorf("no DeepSeek API key configured; set DEEPSEEK_API_KEY or add it to the config file")
	}

	session := assistant.NewSession(client, store)

	if len(args) == 0 {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive assist requires a terminal; pass a goal as an argument")
		}
		return chatui.Run(cmd.Context(), session, store)
	}

	outcome, err := session.Submit(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	switch outcome.Kind {
	case assistant.OutcomeTodos:
		messages := session.Messages()
		fmt.Println(messages[len(messages)-1].Content)
	case assistant.OutcomeReply:
		rendered := markdown.Render(80, outcome.Reply)
		if rendered == "" {
			rendered = outcome.Reply
		}
		fmt.Println(rendered)
	case assistant.OutcomeError:
		return outcome.Err
	}
	return nil
}
