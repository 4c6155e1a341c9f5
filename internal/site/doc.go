// Package site provides types and utilities for loading and validating
// site content configurations. A configuration defines the tree of
// collections and directory-backed children that the manifest builder
// scans, along with per-child explicit file ordering and per-file
// label/description overrides.
//
// # Configuration Format
//
// Configurations are written in JSON (YAML is also accepted):
//
//	{
//	  "previewTitle": "Examples",
//	  "previewDescription": "Browsable example gallery",
//	  "collections": [
//	    {
//	      "label": "Guides",
//	      "children": [
//	        {
//	          "id": "basics",
//	          "label": "Basics",
//	          "description": "Getting started",
//	          "directory": "content/basics",
//	          "fileOrder": ["intro.html", "setup.html"],
//	          "overrides": {
//	            "setup": {"label": "Setup Guide"}
//	          }
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// # Usage
//
// Load a configuration file:
//
//	loader := site.NewLoader()
//	cfg, err := loader.Load("site.config.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrConfigNotFound: configuration file does not exist
//   - ErrInvalidFormat: file is not valid JSON/YAML
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrEmptyChildID, ErrEmptyDirectory, ErrDuplicateChildID: structural
//     validation failures
//
// Absent optional fields (fileOrder, overrides) are left empty here and
// treated as empty by consumers; the loader applies no defaults.
package site
