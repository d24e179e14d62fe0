package main

import (
	"fmt"
	"strings"

	"github.com/h0rv/agendactl/internal/domain"
	"github.com/h0rv/agendactl/internal/store"
	"github.com/spf13/cobra"
)

var (
	sortFlag     string
	statusFlag   string
	categoryFlag string
	jsonFlag     bool
)

func newItemsCmd() *cobra.Command {
	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "List and inspect agenda items",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the organization's agenda items",
		Args:  cobra.NoArgs,
		RunE:  runItemsList,
	}
	listCmd.Flags().StringVar(&sortFlag, "sort", "latest", "Sort by creation date: latest or earliest.")
	listCmd.Flags().StringVar(&statusFlag, "status", "", "Only active or completed items.")
	listCmd.Flags().StringVar(&categoryFlag, "category", "", "Only items of this category ID.")
	listCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON.")

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one agenda item",
		Args:  cobra.ExactArgs(1),
		RunE:  runItemsGet,
	}
	getCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON.")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "List agenda items of every organization",
		Args:  cobra.NoArgs,
		RunE:  runItemsAll,
	}
	allCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON.")

	itemsCmd.AddCommand(listCmd, getCmd, allCmd)
	return itemsCmd
}

// parseFilter turns the list flags into a store filter.
func parseFilter(sortValue, statusValue, categoryID string) (store.Filter, error) {
	var f store.Filter

	switch strings.ToLower(sortValue) {
	case "", "latest":
		f.SetSort(store.SortLatest)
	case "earliest":
		f.SetSort(store.SortEarliest)
	default:
		return f, fmt.Errorf("invalid --sort %q: want latest or earliest", sortValue)
	}

	switch strings.ToLower(statusValue) {
	case "", "all":
	case "active":
		f.SetStatus(store.StatusActive)
	case "completed":
		f.SetStatus(store.StatusCompleted)
	default:
		return f, fmt.Errorf("invalid --status %q: want active or completed", statusValue)
	}

	if categoryID != "" {
		f.SetCategory(store.CategoryFilter{ID: categoryID, Name: categoryID})
	}
	return f, nil
}

func runItemsList(cmd *cobra.Command, args []string) error {
	orgID, err := organizationID()
	if err != nil {
		return err
	}
	filter, err := parseFilter(sortFlag, statusFlag, categoryFlag)
	if err != nil {
		return err
	}
	if eventFlag != "" && !filter.IsDefault() {
		return fmt.Errorf("--event cannot be combined with --sort, --status or --category")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	items, err := client.ListAgendaItems(cmd.Context(), filter.Query(orgID, eventFlag))
	if err != nil {
		return err
	}
	return printItems(cmd, items)
}

func runItemsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	item, err := client.GetAgendaItem(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), toItemJSON(item))
	}
	return writeItemDetail(cmd.OutOrStdout(), item)
}

func runItemsAll(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	items, err := client.ListAllAgendaItems(cmd.Context())
	if err != nil {
		return err
	}
	return printItems(cmd, items)
}

func printItems(cmd *cobra.Command, items []domain.AgendaItem) error {
	if jsonFlag {
		out := make([]itemJSON, len(items))
		for i, it := range items {
			out[i] = toItemJSON(it)
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return writeItemsTable(cmd.OutOrStdout(), items)
}
