package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		PreviewTitle: "t",
		Collections: []Collection{
			{
				Label: "Guides",
				Children: []Child{
					{ID: "basics", Label: "Basics", Directory: "content/basics"},
					{ID: "advanced", Label: "Advanced", Directory: "content/advanced"},
				},
			},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("zero collections is valid", func(t *testing.T) {
		cfg := &Config{PreviewTitle: "t"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("collection with zero children is valid", func(t *testing.T) {
		cfg := &Config{Collections: []Collection{{Label: "Empty"}}}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty child id", func(t *testing.T) {
		cfg := validConfig()
		cfg.Collections[0].Children[0].ID = ""

		err := cfg.Validate()

		assert.ErrorIs(t, err, ErrEmptyChildID)
	})

	t.Run("empty directory", func(t *testing.T) {
		cfg := validConfig()
		cfg.Collections[0].Children[1].Directory = ""

		err := cfg.Validate()

		assert.ErrorIs(t, err, ErrEmptyDirectory)
		assert.Contains(t, err.Error(), "advanced")
	})

	t.Run("duplicate child id", func(t *testing.T) {
		cfg := validConfig()
		cfg.Collections = append(cfg.Collections, Collection{
			Label:    "More",
			Children: []Child{{ID: "basics", Directory: "content/other"}},
		})

		err := cfg.Validate()

		assert.ErrorIs(t, err, ErrDuplicateChildID)
	})
}
