package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed sections/*.yaml
var SectionsFS embed.FS

// Load reads a section file by name, preferring the copy on disk so edits
// show up without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanSectionPath(name)
	if data, err := os.ReadFile(diskSectionPath(clean)); err == nil {
		return data, nil
	}
	return SectionsFS.ReadFile(clean)
}

// LoadFile reads and parses a section by name or path.
func LoadFile(name string) (*File, error) {
	var (
		data []byte
		err  error
	)
	if _, statErr := os.Stat(name); statErr == nil {
		data, err = os.ReadFile(name)
	} else {
		data, err = Load(name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return f, nil
}

// Names lists the embedded sections.
func Names() []string {
	entries, err := SectionsFS.ReadDir("sections")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return names
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskSectionPath(cleanSectionPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanSectionPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	s = strings.TrimPrefix(s, "sections/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return "sections/" + s
}

func diskSectionPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
