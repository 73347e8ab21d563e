// Package registry provides the catalog of named level resources.
// Built-in levels are embedded in the binary; extra directories can be added
// at runtime so players can drop their own maps next to the built-ins.
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed levels
var builtinFS embed.FS

// Point is a spawn override in world coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	Name  string
	Title string
	Spawn *Point // nil means "use the configured spawn"
	Path  string // Resource path, for display
}

// manifest is the YAML structure of levels.yaml.
type manifest struct {
	Levels []manifestEntry `yaml:"levels"`
}

type manifestEntry struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	File  string `yaml:"file"`
	Spawn *Point `yaml:"spawn,omitempty"`
}

type entry struct {
	info LevelInfo
	fsys fs.FS  // nil for in-memory levels
	file string
	text string
}

// Catalog maps level names to their text resources.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]entry)}
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the process-wide catalog pre-loaded with built-in levels.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog()
		sub, err := fs.Sub(builtinFS, "levels")
		if err != nil {
			panic(fmt.Sprintf("registry: embedded levels missing: %v", err))
		}
		if err := defaultCatalog.AddFS(sub, "builtin"); err != nil {
			panic(fmt.Sprintf("registry: embedded levels invalid: %v", err))
		}
	})
	return defaultCatalog
}

// AddDir registers every level in a directory of the local filesystem.
func (c *Catalog) AddDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("registry: level directory %s: %w", dir, err)
	}
	return c.AddFS(os.DirFS(dir), dir)
}

// AddFS registers levels found in fsys. If a levels.yaml manifest exists it
// provides names, titles and spawns; every other *.txt file is registered
// under its base name. Names already present are replaced, so later
// directories shadow built-ins.
func (c *Catalog) AddFS(fsys fs.FS, origin string) error {
	listed := make(map[string]bool)

	data, err := fs.ReadFile(fsys, "levels.yaml")
	switch {
	case err == nil:
		var m manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("registry: parsing %s/levels.yaml: %w", origin, err)
		}
		for _, le := range m.Levels {
			if le.Name == "" || le.File == "" {
				return fmt.Errorf("registry: %s/levels.yaml: entry needs name and file", origin)
			}
			title := le.Title
			if title == "" {
				title = le.Name
			}
			c.put(entry{
				info: LevelInfo{Name: le.Name, Title: title, Spawn: le.Spawn, Path: path.Join(origin, le.File)},
				fsys: fsys,
				file: le.File,
			})
			listed[le.File] = true
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("registry: reading %s/levels.yaml: %w", origin, err)
	}

	matches, err := fs.Glob(fsys, "*.txt")
	if err != nil {
		return fmt.Errorf("registry: scanning %s: %w", origin, err)
	}
	for _, file := range matches {
		if listed[file] {
			continue
		}
		name := strings.TrimSuffix(file, filepath.Ext(file))
		c.put(entry{
			info: LevelInfo{Name: name, Title: name, Path: path.Join(origin, file)},
			fsys: fsys,
			file: file,
		})
	}
	return nil
}

// Register adds a level from an in-memory string. Mostly useful in tests
// and for levels generated by tooling.
func (c *Catalog) Register(info LevelInfo, text string) {
	file := info.Name + ".txt"
	if info.Title == "" {
		info.Title = info.Name
	}
	if info.Path == "" {
		info.Path = "memory/" + file
	}
	c.put(entry{info: info, file: file, text: text})
}

func (c *Catalog) put(e entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[e.info.Name] = e
}

// ReadLevel returns the raw text of the named level. Unknown names return an
// error wrapping fs.ErrNotExist.
func (c *Catalog) ReadLevel(name string) (string, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("registry: unknown level %q: %w", name, fs.ErrNotExist)
	}

	if e.fsys == nil {
		return e.text, nil
	}

	data, err := fs.ReadFile(e.fsys, e.file)
	if err != nil {
		return "", fmt.Errorf("registry: reading level %q: %w", name, err)
	}
	return string(data), nil
}

// Info returns metadata for the named level.
func (c *Catalog) Info(name string) (LevelInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	return e.info, ok
}

// List returns information about all registered levels, sorted by name.
func (c *Catalog) List() []LevelInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]LevelInfo, 0, len(c.entries))
	for _, e := range c.entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Exists checks if a level with the given name is registered.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.Info(name)
	return ok
}
