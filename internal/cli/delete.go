package cli

import (
	"github.com/spf13/cobra"

	"github.com/romariotrain/project-media/internal/media/models"
)

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Bulk delete media and print the ids the store confirmed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acked, err := opts.service(cmd).Delete(cmd.Context(), opts.projectID, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, models.BulkDeleteResponse{IDs: acked})
		},
	}
}
