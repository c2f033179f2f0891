// Package cli implements the ingest command: it pushes creation payloads
// through the mutation gateway to a running media store and prints gallery
// views of a project.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/romariotrain/project-media/internal/config"
	"github.com/romariotrain/project-media/internal/logging"
	"github.com/romariotrain/project-media/internal/media/remote"
	"github.com/romariotrain/project-media/internal/media/service"
)

type options struct {
	apiURL    string
	projectID string
	logLevel  string
}

// NewRootCommand builds the ingest command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	defaults, err := config.Load()
	if err != nil {
		defaults = &config.Config{MediaAPIURL: "http://localhost:8081", LogLevel: "info"}
	}

	root := &cobra.Command{
		Use:           "ingest",
		Short:         "Upload media records to a project catalog and inspect its gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.apiURL == "" {
				return errors.New("api-url is required (use --api-url flag or MEDIA_API_URL env var)")
			}
			if opts.projectID == "" {
				return errors.New("project is required")
			}
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", defaults.MediaAPIURL, "Media store base URL (MEDIA_API_URL)")
	root.PersistentFlags().StringVarP(&opts.projectID, "project", "p", "", "Project identifier")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "Log level")

	root.AddCommand(
		newCreateCommand(opts),
		newDeleteCommand(opts),
		newGalleryCommand(opts),
		newShowCommand(opts),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func (o *options) logger(cmd *cobra.Command) zerolog.Logger {
	return logging.New("ingest", o.logLevel, cmd.ErrOrStderr())
}

func (o *options) service(cmd *cobra.Command) *service.Service {
	logger := o.logger(cmd)
	return service.New(remote.NewClient(o.apiURL, logger), logger)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
