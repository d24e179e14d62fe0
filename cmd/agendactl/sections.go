package main

import (
	"fmt"

	"github.com/h0rv/agendactl/internal/gql"
	"github.com/spf13/cobra"
)

var (
	descriptionFlag string
	sequenceFlag    int
	itemIDsFlag     []string
)

func newSectionsCmd() *cobra.Command {
	sectionsCmd := &cobra.Command{
		Use:   "sections",
		Short: "Manage the agenda sections of an event",
	}

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one agenda section",
		Args:  cobra.ExactArgs(1),
		RunE:  runSectionsGet,
	}
	getCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON.")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an agenda section for --event",
		Args:  cobra.NoArgs,
		RunE:  runSectionsCreate,
	}
	createCmd.Flags().StringVar(&descriptionFlag, "description", "", "Section description.")
	createCmd.Flags().IntVar(&sequenceFlag, "sequence", 1, "Position of the section in the agenda.")
	createCmd.Flags().StringSliceVar(&itemIDsFlag, "items", nil, "Agenda item IDs in the section.")
	_ = createCmd.MarkFlagRequired("description")

	updateCmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an agenda section; unset flags are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE:  runSectionsUpdate,
	}
	updateCmd.Flags().StringVar(&descriptionFlag, "description", "", "Section description.")
	updateCmd.Flags().IntVar(&sequenceFlag, "sequence", 0, "Position of the section in the agenda.")
	updateCmd.Flags().StringSliceVar(&itemIDsFlag, "items", nil, "Agenda item IDs in the section.")

	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an agenda section",
		Args:  cobra.ExactArgs(1),
		RunE:  runSectionsRemove,
	}

	sectionsCmd.AddCommand(getCmd, createCmd, updateCmd, removeCmd)
	return sectionsCmd
}

func runSectionsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	section, err := client.GetSection(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), toSectionJSON(section))
	}
	return writeSectionDetail(cmd.OutOrStdout(), section)
}

func runSectionsCreate(cmd *cobra.Command, args []string) error {
	if eventFlag == "" {
		return fmt.Errorf("--event is required")
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := client.CreateSection(cmd.Context(), gql.SectionInput{
		Description:    descriptionFlag,
		Sequence:       sequenceFlag,
		RelatedEventID: eventFlag,
		ItemIDs:        itemIDsFlag,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
	return err
}

func runSectionsUpdate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	in := gql.SectionInput{
		Description:    descriptionFlag,
		Sequence:       sequenceFlag,
		RelatedEventID: eventFlag,
		ItemIDs:        itemIDsFlag,
	}
	if err := client.UpdateSection(cmd.Context(), args[0], in); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated section %s\n", args[0])
	return err
}

func runSectionsRemove(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.RemoveSection(cmd.Context(), args[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed section %s\n", args[0])
	return err
}
