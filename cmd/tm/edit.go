package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmcli/tm/todo"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace a todo's text",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	item, err := resolveTodo(store, args[0])
	if err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		// An edit cleared to nothing leaves the todo unchanged.
		return nil
	}
	if err := todo.ValidateText(text); err != nil {
		return err
	}

	updated, err := store.Edit(item.ID, text)
	if err != nil {
		return err
	}

	fmt.Printf("Updated todo %s: %s\n", shortID(updated.ID), updated.Text)
	return nil
}
