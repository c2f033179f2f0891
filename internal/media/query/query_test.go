package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romariotrain/project-media/internal/media/models"
)

func ptr(s string) *string { return &s }

func ids(rs []models.MediaRecord) []string {
	out := make([]string, 0, len(rs))
	for _, m := range rs {
		out = append(out, m.ID)
	}
	return out
}

func fixtures() []models.MediaRecord {
	return []models.MediaRecord{
		{ID: "1", Section: "Roof", Tag: ptr("Roof"), CapturedAt: "2024-01-01T00:00:00Z"},
		{ID: "2", Section: "Inverter", OriginalNotes: ptr("Panel wiring loose"), CapturedAt: "2024-01-03T00:00:00Z"},
		{ID: "3", Section: "Meter", AISummary: ptr("Utility meter close-up"), CapturedAt: "2024-01-02T00:00:00Z"},
		{ID: "4", Section: "Roof", FileName: ptr("IMG_0042.jpg"), CapturedAt: "2024-01-02T00:00:00Z"},
		{ID: "5", Section: "roof "},
	}
}

func TestFilterBySearch_BlankQueryIsIdentity(t *testing.T) {
	rs := fixtures()

	for _, q := range []string{"", "   ", "\t\n"} {
		got := FilterBySearch(rs, q)
		assert.Equal(t, rs, got)
	}
}

func TestFilterBySearch_CaseInsensitive(t *testing.T) {
	rs := []models.MediaRecord{{ID: "t", Section: "Attic", Tag: ptr("Roof")}}

	assert.Equal(t, []string{"t"}, ids(FilterBySearch(rs, "roof")))
	assert.Equal(t, []string{"t"}, ids(FilterBySearch(rs, "ROOF")))
	assert.Equal(t, []string{"t"}, ids(FilterBySearch(rs, "  rOoF  ")))
}

func TestFilterBySearch_MatchesEveryField(t *testing.T) {
	rs := fixtures()

	cases := map[string][]string{
		"wiring":   {"2"},
		"utility":  {"3"},
		"img_0042": {"4"},
		"inverter": {"2"},
		"roof":     {"1", "4", "5"},
		"nothing":  {},
	}
	for q, want := range cases {
		t.Run(q, func(t *testing.T) {
			assert.Equal(t, want, ids(FilterBySearch(rs, q)))
		})
	}
}

func TestFilterBySearch_NilFieldsNeverMatch(t *testing.T) {
	rs := []models.MediaRecord{{ID: "empty"}}

	assert.Empty(t, FilterBySearch(rs, "x"))
	assert.Empty(t, FilterBySearch(nil, "x"))
}

func TestMatchedFields(t *testing.T) {
	m := &models.MediaRecord{
		Section:       "Roof north",
		Tag:           ptr("roof"),
		OriginalNotes: ptr("check roof flashing"),
	}

	assert.Equal(t, []Field{FieldOriginalNotes, FieldTag, FieldSection}, MatchedFields(m, "Roof"))
	assert.Nil(t, MatchedFields(m, " "))
	assert.Empty(t, MatchedFields(m, "meter"))
}

func TestGroupBySection(t *testing.T) {
	rs := fixtures()

	groups := GroupBySection(rs)

	// First-seen bucket order, exact keys.
	assert.Equal(t, []string{"Roof", "Inverter", "Meter", "roof "}, groups.Sections())
	assert.Equal(t, []string{"1", "4"}, ids(groups.Map()["Roof"]))
	assert.Equal(t, len(rs), groups.Total())
}

func TestGroupBySection_Totality(t *testing.T) {
	sections := []string{"A", "B", "a", "A ", "B", "A", "", "C"}
	var rs []models.MediaRecord
	for i, s := range sections {
		rs = append(rs, models.MediaRecord{ID: string(rune('a' + i)), Section: s})
	}

	groups := GroupBySection(rs)

	sum := 0
	for _, bucket := range groups.Map() {
		sum += len(bucket)
	}
	assert.Equal(t, len(rs), sum)
	assert.Len(t, groups, 6)
	assert.Empty(t, GroupBySection(nil))
}

func TestSortByCapturedDesc(t *testing.T) {
	rs := []models.MediaRecord{
		{ID: "03", CapturedAt: "2024-01-03T00:00:00Z"},
		{ID: "01", CapturedAt: "2024-01-01T00:00:00Z"},
		{ID: "02", CapturedAt: "2024-01-02T00:00:00Z"},
	}

	got := SortByCapturedDesc(rs)

	assert.Equal(t, []string{"03", "02", "01"}, ids(got))
	// Input is left untouched.
	assert.Equal(t, []string{"03", "01", "02"}, ids(rs))
}

func TestSortByCapturedDesc_TiesKeepInputOrder(t *testing.T) {
	rs := []models.MediaRecord{
		{ID: "a", CapturedAt: "2024-01-01T00:00:00Z"},
		{ID: "b", CapturedAt: "2024-01-02T00:00:00Z"},
		{ID: "c", CapturedAt: "2024-01-01T00:00:00Z"},
		{ID: "d", CapturedAt: "2024-01-02T00:00:00Z"},
		{ID: "e", CapturedAt: "2024-01-01T00:00:00Z"},
	}

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(SortByCapturedDesc(rs)))
	assert.Equal(t, 0, CompareCapturedDesc(rs[0], rs[2]))
}

func TestView(t *testing.T) {
	rs := fixtures()

	res := View(rs, Options{Query: "roof", SortRecent: true})
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"4", "1", "5"}, ids(res.Items))
	assert.Nil(t, res.Sections)
	assert.Equal(t, map[string][]Field{
		"1": {FieldTag, FieldSection},
		"4": {FieldSection},
		"5": {FieldSection},
	}, res.Matches)

	grouped := View(rs, Options{SortRecent: true, Group: true})
	require.Equal(t, len(rs), grouped.Total)
	assert.Nil(t, grouped.Items)
	assert.Nil(t, grouped.Matches)
	assert.Equal(t, []string{"Inverter", "Meter", "Roof", "roof "}, grouped.Sections.Sections())
	assert.Equal(t, []string{"4", "1"}, ids(grouped.Sections.Map()["Roof"]))
}
