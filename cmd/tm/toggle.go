package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcli/tm/internal/ui"
	"github.com/tmcli/tm/todo"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Aliases: []string{"done"},
	Short:   "Toggle a todo between active and completed",
	Args:    cobra.ExactArgs(1),
	RunE:    runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	item, err := resolveTodo(store, args[0])
	if err != nil {
		return err
	}

	tracker := todo.NewProgressTracker(store.CompletedCount())
	updated, err := store.Toggle(item.ID)
	if err != nil {
		return err
	}

	state := "active"
	if updated.Completed {
		state = "completed"
	}
	fmt.Printf("Marked todo %s %s: %s\n", shortID(updated.ID), state, updated.Text)

	if tracker.Observe(store.CompletedCount(), store.TotalCount()) {
		fmt.Println(ui.Celebration())
	}
	return nil
}
