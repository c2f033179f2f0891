package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/romariotrain/project-media/internal/media/models"
)

type createResult struct {
	Index int                 `json:"index"`
	Media *models.MediaRecord `json:"media,omitempty"`
	Error string              `json:"error,omitempty"`
}

func newCreateCommand(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create media from a JSON array of creation requests",
		Long: `Reads a JSON array of creation requests from --file ("-" for stdin).
Each request may use camelCase or snake_case field names. Every request is
sent separately; failures are reported per item and do not stop the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := readRequests(cmd, file)
			if err != nil {
				return err
			}

			svc := opts.service(cmd)
			results := make([]createResult, 0, len(reqs))
			failed := 0
			for i, req := range reqs {
				m, err := svc.Create(cmd.Context(), opts.projectID, req)
				if err != nil {
					failed++
					results = append(results, createResult{Index: i, Error: err.Error()})
					continue
				}
				results = append(results, createResult{Index: i, Media: m})
			}

			if err := printJSON(cmd, results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d requests failed", failed, len(reqs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file with creation requests")
	return cmd
}

func readRequests(cmd *cobra.Command, file string) ([]models.CreationRequest, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open requests: %w", err)
		}
		defer f.Close()
		r = f
	}

	var reqs []models.CreationRequest
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	return reqs, nil
}
