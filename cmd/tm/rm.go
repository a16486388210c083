package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	item, err := resolveTodo(store, args[0])
	if err != nil {
		return err
	}

	if err := store.Delete(item.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted todo %s: %s\n", shortID(item.ID), item.Text)
	return nil
}
