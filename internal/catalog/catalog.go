package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/hcstnb2047/lvdash/models"
)

// Catalog holds the dashboard metadata of known workflow files.
type Catalog struct {
	entries []models.WorkflowMeta
	byFile  map[string]*models.WorkflowMeta
}

func FromJSON(data []byte) (*Catalog, error) {
	var entries []models.WorkflowMeta
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return New(entries)
}

func New(entries []models.WorkflowMeta) (*Catalog, error) {
	c := &Catalog{
		entries: entries,
		byFile:  make(map[string]*models.WorkflowMeta, len(entries)),
	}

	for i := range c.entries {
		meta := &c.entries[i]
		if meta.FileName == "" {
			return nil, fmt.Errorf("catalog entry %d: missing fileName", i)
		}
		if _, dup := c.byFile[meta.FileName]; dup {
			return nil, fmt.Errorf("catalog entry %s: duplicate fileName", meta.FileName)
		}
		if meta.Category == "" {
			meta.Category = models.CategoryUncategorized
		}
		if !meta.Category.Valid() {
			return nil, fmt.Errorf("catalog entry %s: unknown category %q", meta.FileName, meta.Category)
		}
		for _, in := range meta.Inputs {
			if err := validateInput(in); err != nil {
				return nil, fmt.Errorf("catalog entry %s: %w", meta.FileName, err)
			}
		}
		c.byFile[meta.FileName] = meta
	}

	return c, nil
}

func validateInput(in models.WorkflowInput) error {
	switch in.Type {
	case models.InputString, models.InputBoolean:
	case models.InputChoice:
		if len(in.Options) == 0 {
			return fmt.Errorf("choice input %s has no options", in.Name)
		}
	default:
		return fmt.Errorf("input %s has unknown type %q", in.Name, in.Type)
	}
	if in.Name == "" {
		return fmt.Errorf("input without name")
	}
	return nil
}

// Lookup returns a copy of the metadata for fileName, or nil when unknown.
func (c *Catalog) Lookup(fileName string) *models.WorkflowMeta {
	if c == nil {
		return nil
	}
	meta, ok := c.byFile[fileName]
	if !ok {
		return nil
	}
	cp := *meta
	return &cp
}

func (c *Catalog) Entries() []models.WorkflowMeta {
	if c == nil {
		return nil
	}
	out := make([]models.WorkflowMeta, len(c.entries))
	copy(out, c.entries)
	return out
}

// DefaultHidden lists file names hidden until the user shows them.
func (c *Catalog) DefaultHidden() []string {
	var out []string
	for _, e := range c.Entries() {
		if e.DefaultHidden {
			out = append(out, e.FileName)
		}
	}
	return out
}
