package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romariotrain/project-media/internal/media/httpapi"
	"github.com/romariotrain/project-media/internal/media/models"
	"github.com/romariotrain/project-media/internal/media/query"
	"github.com/romariotrain/project-media/internal/media/repository"
	"github.com/romariotrain/project-media/internal/media/service"
)

func newStore(t *testing.T) (*httptest.Server, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	svc := service.New(repo, zerolog.Nop())
	srv := httptest.NewServer(httpapi.NewRouter(httpapi.New(svc), zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, repo
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCreate_ReportsEachRequest(t *testing.T) {
	srv, repo := newStore(t)

	payload := `[
		{"url":"https://cdn/a.jpg","section":"Roof","note":"north face"},
		{"url":"","section":"Roof"},
		{"url":"https://cdn/b.mp4","section":"Meter","media_type":"video","duration_ms":1200}
	]`

	out, err := run(t, payload, "create", "--api-url", srv.URL, "--project", "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 requests failed")

	var results []createResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	require.NotNil(t, results[0].Media)
	require.NotNil(t, results[0].Media.OriginalNotes)
	assert.Equal(t, "north face", *results[0].Media.OriginalNotes)
	assert.NotEmpty(t, results[1].Error)
	require.NotNil(t, results[2].Media)
	assert.Equal(t, models.Video, results[2].Media.MediaType)

	stored, err := repo.ListMedia(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestGallery_GroupedAndSearched(t *testing.T) {
	srv, _ := newStore(t)

	payload := `[
		{"url":"https://cdn/a.jpg","section":"Roof","tag":"damage","capturedAt":"2024-01-01T10:00:00.000Z"},
		{"url":"https://cdn/b.jpg","section":"Meter","capturedAt":"2024-03-01T10:00:00.000Z"},
		{"url":"https://cdn/c.jpg","section":"Roof","capturedAt":"2024-02-01T10:00:00.000Z"}
	]`
	_, err := run(t, payload, "create", "--api-url", srv.URL, "--project", "p1")
	require.NoError(t, err)

	out, err := run(t, "", "gallery", "--api-url", srv.URL, "--project", "p1", "--recent", "--group")
	require.NoError(t, err)

	var res query.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"Meter", "Roof"}, res.Sections.Sections())
	roof := res.Sections.Map()["Roof"]
	require.Len(t, roof, 2)
	assert.Equal(t, "https://cdn/c.jpg", roof[0].URL)

	out, err = run(t, "", "gallery", "--api-url", srv.URL, "--project", "p1", "-q", "DAMAGE")
	require.NoError(t, err)
	res = query.Result{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "https://cdn/a.jpg", res.Items[0].URL)
	assert.Equal(t, []query.Field{query.FieldTag}, res.Matches[res.Items[0].ID])
}

func TestShow(t *testing.T) {
	srv, repo := newStore(t)

	created, err := repo.CreateMedia(context.Background(), &models.MediaRecord{
		ProjectID: "p1", URL: "https://cdn/a.jpg", Section: "Roof", MediaType: models.Photo,
	})
	require.NoError(t, err)

	out, err := run(t, "", "show", "--api-url", srv.URL, "--project", "p1", created.ID)
	require.NoError(t, err)
	var got models.MediaRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, *created, got)

	_, err = run(t, "", "show", "--api-url", srv.URL, "--project", "p2", created.ID)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestDelete_PrintsAcknowledged(t *testing.T) {
	srv, repo := newStore(t)

	created, err := repo.CreateMedia(context.Background(), &models.MediaRecord{
		ProjectID: "p1", URL: "https://cdn/a.jpg", Section: "Roof", MediaType: models.Photo,
	})
	require.NoError(t, err)

	out, err := run(t, "", "delete", "--api-url", srv.URL, "--project", "p1", created.ID, "missing")
	require.NoError(t, err)

	var resp models.BulkDeleteResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []string{created.ID}, resp.IDs)
}

func TestRoot_RequiresProject(t *testing.T) {
	_, err := run(t, "", "gallery", "--api-url", "http://localhost:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project is required")
}
