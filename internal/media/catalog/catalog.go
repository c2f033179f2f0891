// Package catalog holds the ordered media records of one project as an
// immutable snapshot. Every change returns a new Catalog; callers keep the
// snapshot they render from.
package catalog

import (
	"fmt"
	"slices"

	"github.com/romariotrain/project-media/internal/media/models"
)

type Catalog struct {
	projectID string
	records   []models.MediaRecord
	index     map[string]int
}

// New builds a snapshot from records in the given order.
func New(projectID string, records ...models.MediaRecord) (*Catalog, error) {
	c := Empty(projectID)
	for _, m := range records {
		if err := c.check(m); err != nil {
			return nil, err
		}
		c.index[m.ID] = len(c.records)
		c.records = append(c.records, m)
	}
	return c, nil
}

func Empty(projectID string) *Catalog {
	return &Catalog{
		projectID: projectID,
		index:     make(map[string]int),
	}
}

func (c *Catalog) ProjectID() string { return c.projectID }

func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of the records in insertion order.
func (c *Catalog) Records() []models.MediaRecord {
	return slices.Clone(c.records)
}

func (c *Catalog) Get(id string) (models.MediaRecord, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.MediaRecord{}, false
	}
	return c.records[i], true
}

func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Append returns a new snapshot with m added at the end.
func (c *Catalog) Append(m models.MediaRecord) (*Catalog, error) {
	if err := c.check(m); err != nil {
		return nil, err
	}

	next := &Catalog{
		projectID: c.projectID,
		records:   make([]models.MediaRecord, len(c.records), len(c.records)+1),
		index:     make(map[string]int, len(c.index)+1),
	}
	copy(next.records, c.records)
	for id, i := range c.index {
		next.index[id] = i
	}
	next.index[m.ID] = len(next.records)
	next.records = append(next.records, m)

	return next, nil
}

// Remove returns a new snapshot without the given ids. Unknown ids are ignored.
func (c *Catalog) Remove(ids []string) *Catalog {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	next := Empty(c.projectID)
	next.records = make([]models.MediaRecord, 0, len(c.records))
	for _, m := range c.records {
		if _, ok := drop[m.ID]; ok {
			continue
		}
		next.index[m.ID] = len(next.records)
		next.records = append(next.records, m)
	}
	return next
}

func (c *Catalog) check(m models.MediaRecord) error {
	if m.ID == "" {
		return fmt.Errorf("catalog append: empty id: %w", models.ErrInvalidArgument)
	}
	if m.ProjectID != c.projectID {
		return fmt.Errorf("catalog append: record %s belongs to project %q, not %q: %w",
			m.ID, m.ProjectID, c.projectID, models.ErrInvalidArgument)
	}
	if _, exists := c.index[m.ID]; exists {
		return fmt.Errorf("catalog append: duplicate id %s: %w", m.ID, models.ErrConflict)
	}
	return nil
}
