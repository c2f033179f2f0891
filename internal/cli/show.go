package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romariotrain/project-media/internal/media/models"
)

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print one record of the project catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.service(cmd)
			if _, err := svc.Load(cmd.Context(), opts.projectID); err != nil {
				return err
			}
			m, ok := svc.Record(opts.projectID, args[0])
			if !ok {
				return fmt.Errorf("media %s in project %s: %w", args[0], opts.projectID, models.ErrNotFound)
			}
			return printJSON(cmd, m)
		},
	}
}
