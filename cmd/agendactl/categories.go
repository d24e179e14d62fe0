package main

import (
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List and inspect agenda item categories",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the organization's categories, disabled ones included",
		Args:  cobra.NoArgs,
		RunE:  runCategoriesList,
	}
	listCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON.")

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoriesGet,
	}
	getCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON.")

	categoriesCmd.AddCommand(listCmd, getCmd)
	return categoriesCmd
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	orgID, err := organizationID()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	categories, err := client.ListCategories(cmd.Context(), orgID)
	if err != nil {
		return err
	}

	if jsonFlag {
		out := make([]categoryJSON, len(categories))
		for i, c := range categories {
			out[i] = toCategoryJSON(c)
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return writeCategoriesTable(cmd.OutOrStdout(), categories)
}

func runCategoriesGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	category, err := client.GetCategory(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), toCategoryJSON(category))
	}
	status := "enabled"
	if category.IsDisabled {
		status = "disabled"
	}
	return writeFields(cmd.OutOrStdout(), [][2]string{
		{"ID", category.ID},
		{"Name", category.Name},
		{"Description", category.Description},
		{"Status", status},
	})
}
