package book

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supported lists the image extensions the decoder registrations in
// loader.go can handle.
var supported = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsSupported reports whether the path has a supported image extension.
func IsSupported(path string) bool {
	return supported[strings.ToLower(filepath.Ext(path))]
}

// scanDir lists the supported images directly inside dir, sorted by
// name. It does not recurse.
func scanDir(dir string) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var pages []Page
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		pages = append(pages, Page{Path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages, nil
}
