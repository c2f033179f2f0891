package cli

import (
	"github.com/spf13/cobra"

	"github.com/romariotrain/project-media/internal/media/query"
)

func newGalleryCommand(opts *options) *cobra.Command {
	var qo query.Options

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print the project gallery, optionally searched, sorted and grouped",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.service(cmd)
			if _, err := svc.Load(cmd.Context(), opts.projectID); err != nil {
				return err
			}
			return printJSON(cmd, svc.Gallery(opts.projectID, qo))
		},
	}

	cmd.Flags().StringVarP(&qo.Query, "query", "q", "", "Search notes, AI summary, tag, section and file name")
	cmd.Flags().BoolVar(&qo.SortRecent, "recent", false, "Sort by capture time, newest first")
	cmd.Flags().BoolVar(&qo.Group, "group", false, "Group by section")
	return cmd
}
