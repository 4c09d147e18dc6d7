// Package manifest reads the [project] table of a pyproject.toml file and
// normalizes it into the display form used by the metadata table.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Sentinel errors for manifest loading.
var (
	// ErrManifestRead is returned when the manifest file cannot be read.
	ErrManifestRead = errors.New("failed to read manifest")

	// ErrManifestParse is returned when the manifest is not valid TOML or
	// has no [project] table.
	ErrManifestParse = errors.New("failed to parse manifest")
)

// Field is one normalized metadata entry, in traversal order.
type Field struct {
	Key   string
	Value string
}

// Project is the normalized [project] table. Multi-valued fields are
// pre-joined into the display strings the metadata table renders; empty
// fields read "None".
type Project struct {
	Name           string
	Version        string
	Description    string
	Authors        string
	Maintainers    string
	License        string
	RequiresPython string
	Dependencies   string
	Keywords       string
	Classifiers    string
	URLs           string
	Scripts        string

	// Homepage is kept verbatim for the profile lookup.
	Homepage string
}

// person is one entry of the authors/maintainers arrays.
type person struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// rawProject mirrors the manifest's [project] table. License may be a
// bare string or a {text = "..."} table, so it decodes lazily.
type rawProject struct {
	Name           string            `toml:"name"`
	Version        string            `toml:"version"`
	Description    string            `toml:"description"`
	Authors        []person          `toml:"authors"`
	Maintainers    []person          `toml:"maintainers"`
	License        toml.Primitive    `toml:"license"`
	RequiresPython string            `toml:"requires-python"`
	Dependencies   []string          `toml:"dependencies"`
	Keywords       []string          `toml:"keywords"`
	Classifiers    []string          `toml:"classifiers"`
	URLs           map[string]string `toml:"urls"`
	Scripts        map[string]string `toml:"scripts"`
}

type pyproject struct {
	Project rawProject `toml:"project"`
}

// Load reads and normalizes the manifest at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestRead, err)
	}
	return Parse(string(data))
}

// Parse decodes manifest text and normalizes the [project] table.
func Parse(text string) (*Project, error) {
	var raw pyproject
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	if raw.Project.Name == "" {
		return nil, fmt.Errorf("%w: missing project name", ErrManifestParse)
	}

	p := &Project{
		Name:           raw.Project.Name,
		Version:        orNone(raw.Project.Version),
		Description:    orNone(raw.Project.Description),
		Authors:        joinPeople(raw.Project.Authors),
		Maintainers:    joinPeople(raw.Project.Maintainers),
		License:        decodeLicense(meta, raw.Project.License),
		RequiresPython: orNone(raw.Project.RequiresPython),
		Dependencies:   joinList(raw.Project.Dependencies),
		Keywords:       joinList(raw.Project.Keywords),
		Classifiers:    joinList(raw.Project.Classifiers),
		URLs:           joinMap(raw.Project.URLs),
		Scripts:        joinScripts(raw.Project.Scripts),
		Homepage:       raw.Project.URLs["Homepage"],
	}
	return p, nil
}

// Fields returns the metadata entries in their fixed rendering order.
func (p *Project) Fields() []Field {
	return []Field{
		{"name", p.Name},
		{"version", p.Version},
		{"description", p.Description},
		{"authors", p.Authors},
		{"maintainers", p.Maintainers},
		{"requires-python", p.RequiresPython},
		{"dependencies", p.Dependencies},
		{"keywords", p.Keywords},
		{"license", p.License},
		{"classifiers", p.Classifiers},
		{"urls", p.URLs},
		{"scripts", p.Scripts},
	}
}

// Organization derives the account name from the Homepage URL, which by
// convention points at a repository page whose second-to-last path
// segment is the owning account.
func (p *Project) Organization() string {
	trimmed := strings.TrimRight(p.Homepage, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

func orNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "None"
	}
	return value
}

func joinPeople(people []person) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return orNone(strings.Join(names, ","))
}

func joinList(items []string) string {
	return orNone(strings.Join(items, "<br/>"))
}

func joinMap(m map[string]string) string {
	if len(m) == 0 {
		return "None"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic row order regardless of map iteration.
	sortCaseInsensitive(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s = %s", k, m[k]))
	}
	return strings.Join(pairs, "<br/>")
}

// joinScripts renders entry points as `cmd` → `fn()`, keeping only the
// callable part of the "module:function" target.
func joinScripts(scripts map[string]string) string {
	if len(scripts) == 0 {
		return "None"
	}
	keys := make([]string, 0, len(scripts))
	for k := range scripts {
		keys = append(keys, k)
	}
	sortCaseInsensitive(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		fn := scripts[k]
		if _, after, ok := strings.Cut(fn, ":"); ok {
			fn = after
		}
		pairs = append(pairs, fmt.Sprintf("`%s` &rightarrow; `%s()`", k, fn))
	}
	return strings.Join(pairs, "<br/>")
}

func sortCaseInsensitive(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})
}

// decodeLicense accepts both spellings of the license field: a bare SPDX
// string or a {text = "..."} table.
func decodeLicense(meta toml.MetaData, prim toml.Primitive) string {
	if !meta.IsDefined("project", "license") {
		return "None"
	}
	var asString string
	if err := meta.PrimitiveDecode(prim, &asString); err == nil {
		return orNone(asString)
	}
	var asTable struct {
		Text string `toml:"text"`
	}
	if err := meta.PrimitiveDecode(prim, &asTable); err == nil {
		return orNone(asTable.Text)
	}
	return "None"
}
