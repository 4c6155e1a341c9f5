package site

import "fmt"

// Config represents the complete site content configuration
type Config struct {
	PreviewTitle       string       `json:"previewTitle" yaml:"previewTitle"`
	PreviewDescription string       `json:"previewDescription" yaml:"previewDescription"`
	Collections        []Collection `json:"collections" yaml:"collections"`
}

// Collection represents a top-level grouping of children
type Collection struct {
	Label    string  `json:"label" yaml:"label"`
	Children []Child `json:"children" yaml:"children"`
}

// Child represents a directory-backed grouping of content files
type Child struct {
	ID          string              `json:"id" yaml:"id"`
	Label       string              `json:"label" yaml:"label"`
	Description string              `json:"description" yaml:"description"`
	Directory   string              `json:"directory" yaml:"directory"`
	FileOrder   []string            `json:"fileOrder,omitempty" yaml:"fileOrder,omitempty"`
	Overrides   map[string]Override `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Override replaces extracted values for a single file, keyed by the file's
// base name. A nil field leaves the extracted value in place.
type Override struct {
	Label       *string `json:"label,omitempty" yaml:"label,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate validates the site configuration
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for ci, col := range c.Collections {
		for i, child := range col.Children {
			if child.ID == "" {
				return fmt.Errorf("collection %d child %d: %w", ci, i, ErrEmptyChildID)
			}
			if child.Directory == "" {
				return fmt.Errorf("child %q: %w", child.ID, ErrEmptyDirectory)
			}
			if seen[child.ID] {
				return fmt.Errorf("child %q: %w", child.ID, ErrDuplicateChildID)
			}
			seen[child.ID] = true
		}
	}
	return nil
}
