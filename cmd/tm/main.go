// Package main implements the tm CLI, a personal task tracker with an
// AI planning assistant.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmcli/tm/internal/config"
	"github.com/tmcli/tm/internal/logging"
	"github.com/tmcli/tm/internal/storage"
	"github.com/tmcli/tm/internal/ui"
	"github.com/tmcli/tm/todo"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tm",
	Short:         "tm - a task list with an AI planning assistant",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(debugFlag)
	},
}

var debugFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// openStore loads configuration and opens the persistent task store.
func openStore() (*todo.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, err
	}

	return todo.Open(storage.NewStore(dataDir)), cfg, nil
}

// resolveTodo finds a todo by full ID or unique prefix, case-insensitively.
func resolveTodo(store *todo.Store, arg string) (todo.Todo, error) {
	needle := strings.ToLower(strings.TrimSpace(arg))
	if needle == "" {
		return todo.Todo{}, fmt.Errorf("todo ID is required")
	}

	if found := store.Find(arg); found != nil {
		return *found, nil
	}

	var matches []todo.Todo
	for _, item := range store.Todos() {
		if strings.HasPrefix(strings.ToLower(item.ID), needle) {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return todo.Todo{}, fmt.Errorf("%w: %s", todo.ErrTodoNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return todo.Todo{}, fmt.Errorf("ambiguous todo ID %q matches %d todos", arg, len(matches))
	}
}

// shortID returns the display form of an ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
