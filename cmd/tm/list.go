package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmcli/tm/internal/ui"
	"github.com/tmcli/tm/todo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	RunE:  runList,
}

var (
	listFilter string
	listJSON   bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Filter todos (all, active, completed)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	filter, err := todo.ParseFilter(listFilter)
	if err != nil {
		return err
	}

	visible := store.Visible(filter)

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}

	if store.TotalCount() == 0 {
		fmt.Println("No todos yet. Add one with `tm add` or ask the assistant with `tm assist`.")
		return nil
	}

	if len(visible) > 0 {
		fmt.Print(formatTodoTable(visible))
		fmt.Println()
	}
	fmt.Println(ui.ProgressLine(store.CompletedCount(), store.TotalCount()))
	return nil
}

func formatTodoTable(todos []todo.Todo) string {
	ids := make([]string, 0, len(todos))
	for _, item := range todos {
		ids = append(ids, item.ID)
	}
	prefixLengths := ui.UniqueIDPrefixLengths(ids)

	now := time.Now()
	table := ui.NewTableBuilder([]string{"", "ID", "TASK", "AGE", ""}, len(todos))
	for _, item := range todos {
		id := shortID(item.ID)
		table.AddRow([]string{
			ui.Checkbox(item.Completed),
			ui.HighlightID(id, ui.PrefixLength(prefixLengths, item.ID)),
			ui.TaskText(item),
			ui.FormatTimeAgo(item.CreatedAt, now),
			ui.Origin(item),
		})
	}
	return table.String()
}
