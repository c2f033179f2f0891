package query

import "github.com/romariotrain/project-media/internal/media/models"

type Options struct {
	Query      string
	SortRecent bool
	Group      bool
}

// Result is a gallery view. Sections is set only when grouping was requested.
// Matches maps each kept record id to the fields the query hit and is set
// only for a non-blank query.
type Result struct {
	Items    []models.MediaRecord `json:"items,omitempty"`
	Sections Groups               `json:"sections,omitempty"`
	Matches  map[string][]Field   `json:"matches,omitempty"`
	Total    int                  `json:"total"`
}

// View filters, then sorts, then groups.
func View(records []models.MediaRecord, opts Options) Result {
	rs := FilterBySearch(records, opts.Query)
	if opts.SortRecent {
		rs = SortByCapturedDesc(rs)
	}

	res := Result{Total: len(rs)}
	if normalizeQuery(opts.Query) != "" {
		res.Matches = make(map[string][]Field, len(rs))
		for i := range rs {
			res.Matches[rs[i].ID] = MatchedFields(&rs[i], opts.Query)
		}
	}
	if opts.Group {
		res.Sections = GroupBySection(rs)
		return res
	}
	res.Items = rs
	return res
}
