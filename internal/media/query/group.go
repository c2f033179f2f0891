package query

import "github.com/romariotrain/project-media/internal/media/models"

// SectionGroup is one bucket of records sharing the exact same section label.
type SectionGroup struct {
	Section string               `json:"section"`
	Records []models.MediaRecord `json:"items"`
}

// Groups keeps buckets in the order their section was first seen.
type Groups []SectionGroup

// GroupBySection places every record in exactly one bucket keyed by its raw
// section string. Labels differing only in case or whitespace form separate
// buckets. Within a bucket records keep input order.
func GroupBySection(records []models.MediaRecord) Groups {
	pos := make(map[string]int)
	var groups Groups

	for _, m := range records {
		i, ok := pos[m.Section]
		if !ok {
			i = len(groups)
			pos[m.Section] = i
			groups = append(groups, SectionGroup{Section: m.Section})
		}
		groups[i].Records = append(groups[i].Records, m)
	}
	return groups
}

func (g Groups) Map() map[string][]models.MediaRecord {
	out := make(map[string][]models.MediaRecord, len(g))
	for _, sg := range g {
		out[sg.Section] = sg.Records
	}
	return out
}

func (g Groups) Sections() []string {
	out := make([]string, 0, len(g))
	for _, sg := range g {
		out = append(out, sg.Section)
	}
	return out
}

// Total is the number of records across all buckets.
func (g Groups) Total() int {
	n := 0
	for _, sg := range g {
		n += len(sg.Records)
	}
	return n
}
