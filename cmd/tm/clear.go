package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed todos",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	removed := store.ClearCompleted()
	switch removed {
	case 0:
		fmt.Println("No completed todos to remove.")
	case 1:
		fmt.Println("Removed 1 completed todo.")
	default:
		fmt.Printf("Removed %d completed todos.\n", removed)
	}
	return nil
}
