package domain

// FileEntry describes one discovered content file in the manifest.
type FileEntry struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// ManifestChild is a directory-backed grouping of file entries.
type ManifestChild struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Files       []FileEntry `json:"files"`
}

// ManifestCollection is a top-level grouping of children.
type ManifestCollection struct {
	Label    string          `json:"label"`
	Children []ManifestChild `json:"children"`
}

// Manifest is the final JSON artifact describing the navigable content
// hierarchy. Collection, child, and file ordering is significant and is
// preserved exactly as assembled.
type Manifest struct {
	PreviewTitle       string               `json:"previewTitle"`
	PreviewDescription string               `json:"previewDescription"`
	Collections        []ManifestCollection `json:"collections"`
}
