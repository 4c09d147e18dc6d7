// Package pymod extracts documentation from a Python package by scanning
// its source statically: module docstring, top-level functions and classes
// with their annotations, and module constants. No Python runtime is
// involved, so the target project does not have to be installed.
package pymod

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Sentinel errors for module scanning.
var (
	// ErrModuleNotFound indicates no source file exists for the module.
	ErrModuleNotFound = errors.New("module source not found")

	// ErrEmptyModuleName indicates the manifest did not name a module.
	ErrEmptyModuleName = errors.New("module name cannot be empty")
)

// Param is one annotated parameter of a callable.
type Param struct {
	Name string
	Type string
}

// Callable is a documented function, method or constructor. Params holds
// only annotated parameters, matching what Python exposes through
// __annotations__. Returns is empty when no return annotation exists.
type Callable struct {
	Name    string
	Params  []Param
	Returns string
	Doc     string
}

// Class is a documented class with its constructor and public methods.
type Class struct {
	Name    string
	Doc     string
	Init    *Callable
	Methods []Callable
}

// Constant is a top-level NAME = literal assignment.
type Constant struct {
	Name  string
	Value string
}

// Module is the scanned documentation model of one Python module.
// Functions, classes, methods and constants are sorted case-insensitively
// by name, so rendering order is deterministic. Warnings records callables
// that were skipped because they carry no docstring.
type Module struct {
	Name      string
	Doc       string
	Functions []Callable
	Classes   []Class
	Constants []Constant
	Warnings  []string
}

var (
	defPattern    = regexp.MustCompile(`^(\s*)def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	classPattern  = regexp.MustCompile(`^class\s+([A-Za-z_][A-Za-z0-9_]*)\s*(?:\([^)]*\))?\s*:`)
	constPattern  = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(\S.*)$`)
	returnPattern = regexp.MustCompile(`->\s*([^:]+):\s*$`)
)

// Load locates and scans the named module under the project root. It tries
// the flat layout ({name}.py), the package layout ({name}/__init__.py) and
// the src layout (src/{name}/__init__.py), in that order.
func Load(root, name string) (*Module, error) {
	if name == "" {
		return nil, ErrEmptyModuleName
	}

	candidates := []string{
		filepath.Join(root, name+".py"),
		filepath.Join(root, name, "__init__.py"),
		filepath.Join(root, "src", name, "__init__.py"),
	}
	for _, path := range candidates {
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return Parse(name, string(src)), nil
	}
	return nil, fmt.Errorf("%w: %q under %q", ErrModuleNotFound, name, root)
}

// Parse scans Python source text into the documentation model.
func Parse(name, src string) *Module {
	mod := &Module{Name: name}
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	doc, next := moduleDocstring(lines)
	mod.Doc = doc

	for i := next; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "def "):
			fn, next := parseCallable(lines, i, 0)
			i = next
			if fn == nil || strings.HasPrefix(fn.Name, "_") {
				continue
			}
			if fn.Doc == "" {
				mod.warnf("function %q has no docstring", fn.Name)
				continue
			}
			mod.Functions = append(mod.Functions, *fn)
		case classPattern.MatchString(line):
			cls, next := parseClass(mod, lines, i)
			i = next
			if cls != nil {
				mod.Classes = append(mod.Classes, *cls)
			}
		case constPattern.MatchString(line):
			m := constPattern.FindStringSubmatch(line)
			if strings.HasPrefix(m[1], "_") || !isLiteral(m[2]) {
				continue
			}
			mod.Constants = append(mod.Constants, Constant{Name: m[1], Value: strings.TrimSpace(m[2])})
		}
	}

	sortByName := func(a, b string) bool {
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la == lb {
			return a < b
		}
		return la < lb
	}
	sort.SliceStable(mod.Functions, func(i, j int) bool { return sortByName(mod.Functions[i].Name, mod.Functions[j].Name) })
	sort.SliceStable(mod.Classes, func(i, j int) bool { return sortByName(mod.Classes[i].Name, mod.Classes[j].Name) })
	sort.SliceStable(mod.Constants, func(i, j int) bool { return sortByName(mod.Constants[i].Name, mod.Constants[j].Name) })

	return mod
}

func (m *Module) warnf(format string, args ...any) {
	m.Warnings = append(m.Warnings, fmt.Sprintf(format, args...))
}

// moduleDocstring returns the docstring opening the module, skipping
// comments and blank lines before the first statement.
func moduleDocstring(lines []string) (string, int) {
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''") {
			return readDocstring(lines, i, 0)
		}
		return "", i
	}
	return "", len(lines)
}

// readDocstring extracts the docstring starting at lines[start], dedenting
// body lines by the docstring's own base indentation so nested docstrings
// follow the same indentation grammar as module docstrings. It returns the
// text and the index of the line after the closing delimiter.
func readDocstring(lines []string, start, indent int) (string, int) {
	line := strings.TrimLeft(lines[start], " ")
	delim := `"""`
	if strings.HasPrefix(line, "'''") {
		delim = "'''"
	}
	rest := line[len(delim):]

	// Single-line docstring.
	if end := strings.Index(rest, delim); end >= 0 {
		return rest[:end], start + 1
	}

	var body []string
	if rest != "" {
		body = append(body, rest)
	}
	for i := start + 1; i < len(lines); i++ {
		if end := strings.Index(lines[i], delim); end >= 0 {
			body = append(body, dedent(lines[i][:end], indent))
			return strings.TrimRight(strings.Join(body, "\n"), " \n"), i + 1
		}
		body = append(body, dedent(lines[i], indent))
	}
	return strings.TrimRight(strings.Join(body, "\n"), " \n"), len(lines)
}

// dedent removes up to n leading spaces.
func dedent(line string, n int) string {
	for i := 0; i < n && strings.HasPrefix(line, " "); i++ {
		line = line[1:]
	}
	return line
}

// parseCallable scans a def statement (optionally spanning several lines)
// plus its docstring. It returns the callable and the index of the last
// consumed line.
func parseCallable(lines []string, start, indent int) (*Callable, int) {
	m := defPattern.FindStringSubmatch(lines[start])
	if m == nil || len(m[1]) != indent {
		return nil, start
	}
	name := m[2]

	// Accumulate the signature until the parentheses balance and the
	// statement ends with a colon.
	sig := lines[start]
	i := start
	for !signatureComplete(sig) && i+1 < len(lines) {
		i++
		sig += " " + strings.TrimSpace(lines[i])
	}

	c := &Callable{Name: name}
	lparen := strings.Index(sig, "(")
	rparen := strings.LastIndex(sig, ")")
	if lparen >= 0 && rparen > lparen {
		c.Params = parseParams(sig[lparen+1 : rparen])
		if rm := returnPattern.FindStringSubmatch(sig[rparen+1:]); rm != nil {
			c.Returns = strings.TrimSpace(rm[1])
		}
	}

	// Docstring, if the next non-blank line opens one.
	for j := i + 1; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''") {
			doc, next := readDocstring(lines, j, indent+4)
			c.Doc = doc
			return c, next - 1
		}
		break
	}
	return c, i
}

// signatureComplete reports whether a def statement is syntactically
// closed: balanced parentheses and a trailing colon.
func signatureComplete(sig string) bool {
	depth := 0
	for _, r := range sig {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
	}
	return depth == 0 && strings.HasSuffix(strings.TrimSpace(sig), ":")
}

// parseParams extracts the annotated parameters of a signature. Parameters
// without annotations are omitted, mirroring Python's __annotations__, and
// self never appears.
func parseParams(args string) []Param {
	var params []Param
	for _, arg := range splitTopLevel(args) {
		// Drop any default value.
		if eq := topLevelIndex(arg, '='); eq >= 0 {
			arg = arg[:eq]
		}
		name, typ, ok := strings.Cut(arg, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(name), "*"))
		typ = strings.TrimSpace(typ)
		if name == "" || name == "self" || typ == "" {
			continue
		}
		params = append(params, Param{Name: name, Type: typ})
	}
	return params
}

// splitTopLevel splits on commas outside brackets.
func splitTopLevel(s string) []string {
	var parts []string
	depth, last := 0, 0
	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[last:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// topLevelIndex returns the index of the first occurrence of c outside
// brackets, or -1.
func topLevelIndex(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		default:
			if s[i] == c && depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseClass scans a class statement, its docstring, constructor and
// public methods. A class without a docstring is skipped with a warning.
// It returns the class and the index of the last consumed line.
func parseClass(mod *Module, lines []string, start int) (*Class, int) {
	name := classPattern.FindStringSubmatch(lines[start])[1]
	cls := &Class{Name: name}

	i := start
	// Docstring directly below the class statement.
	for j := start + 1; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''") {
			cls.Doc, i = readDocstring(lines, j, 4)
			i--
		}
		break
	}

	// Body: consume until the next top-level statement.
	for i++; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, " ") {
			i--
			break
		}
		if !strings.HasPrefix(line, "    def ") {
			continue
		}
		method, next := parseCallable(lines, i, 4)
		i = next
		if method == nil {
			continue
		}
		switch {
		case method.Name == "__init__":
			if method.Doc != "" {
				cls.Init = method
			}
		case strings.HasPrefix(method.Name, "_"):
			// private, not documented
		case method.Doc == "":
			mod.warnf("method %q has no docstring", name+"."+method.Name)
		default:
			cls.Methods = append(cls.Methods, *method)
		}
	}

	if strings.HasPrefix(name, "_") {
		return nil, i
	}
	if cls.Doc == "" {
		mod.warnf("class %q has no docstring", name)
		return nil, i
	}

	sort.SliceStable(cls.Methods, func(a, b int) bool {
		la, lb := strings.ToLower(cls.Methods[a].Name), strings.ToLower(cls.Methods[b].Name)
		if la == lb {
			return cls.Methods[a].Name < cls.Methods[b].Name
		}
		return la < lb
	})
	return cls, i
}

// isLiteral reports whether a constant's right-hand side looks like a
// plain literal (number, string, list, dict, tuple, bool or None) rather
// than an arbitrary expression.
func isLiteral(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	switch value[0] {
	case '"', '\'', '[', '{', '(', '-':
		return true
	}
	if value[0] >= '0' && value[0] <= '9' {
		return true
	}
	switch value {
	case "True", "False", "None":
		return true
	}
	return false
}
