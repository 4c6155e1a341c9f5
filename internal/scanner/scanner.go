// Package scanner lists the HTML content files of configured directories.
package scanner

import (
	"os"
	"strings"

	"github.com/quantmind-br/sitenav-go/internal/domain"
)

// ListHTML returns the immediate-child filenames of dir whose lowercased
// name ends in ".html". Subdirectories are never entered; directories and
// non-HTML files are excluded. A missing or non-directory path is a build
// error and returns a *domain.DirectoryError.
func ListHTML(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewDirectoryError(dir, domain.ErrDirectoryNotFound)
		}
		return nil, domain.NewDirectoryError(dir, err)
	}
	if !info.IsDir() {
		return nil, domain.NewDirectoryError(dir, domain.ErrNotADirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.NewDirectoryError(dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".html") {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}
