package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/service/export"
	"legacy-booth/internal/service/session"
)

type appRunner func(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error

func newResidentsCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "residents",
		Short: "List residents and staff profiles",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTAFF\tFAMILY EMAIL")
			for _, r := range a.legacy.Residents() {
				family := "-"
				if r.HasFamilyEmail() {
					family = *r.FamilyContactEmail
				}
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", r.ID, r.Name, r.IsStaff, family)
			}
			return w.Flush()
		}),
	}
}

func newPromptsCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "prompts",
		Short: "List storytelling prompts",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tQUESTION")
			for _, p := range a.legacy.Prompts() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Category, p.Question)
			}
			return w.Flush()
		}),
	}
}

func newRecordingsCmd(withApp appRunner) *cobra.Command {
	var status, residentID string

	cmd := &cobra.Command{
		Use:   "recordings",
		Short: "List recordings, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			filter := domain.RecordingFilter{
				ResidentID: residentID,
				Status:     domain.TranscriptionStatus(status),
			}
			if filter.Status != "" && !filter.Status.IsValid() {
				return fmt.Errorf("unknown status %q (want Pending, In Progress or Complete)", status)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRECORDED\tRESIDENT\tTYPE\tSTATUS")
			for _, r := range a.legacy.Recordings() {
				if !filter.Matches(r) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Timestamp.Format("2006-01-02 15:04"), r.ResidentID, r.Type, r.Status)
			}
			return w.Flush()
		}),
	}
	cmd.Flags().StringVar(&status, "status", "", "only recordings with this transcription status")
	cmd.Flags().StringVar(&residentID, "resident", "", "only recordings of this resident id")
	return cmd
}

func newExportCmd(withApp appRunner) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <resident-id>",
		Short: "Write a resident's legacy book as an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			resident, ok := a.legacy.GetResidentByID(args[0])
			if !ok {
				return fmt.Errorf("resident %q not found", args[0])
			}

			data, err := export.LegacyBook(resident, a.legacy.Recordings())
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("legacy_book_%s.xlsx", resident.ID)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default legacy_book_<id>.xlsx)")
	return cmd
}

func newHashPasscodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passcode <passcode>",
		Short: "Print a bcrypt hash for STAFF_PASSCODE_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := session.HashPasscode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
