package param

import (
	"os"
	"strings"
)

// PathType tells whether a Path parameter expects a file or a directory.
type PathType string

const (
	PathFile PathType = "file"
	PathDir  PathType = "dir"
)

// Path is a filesystem path parameter.
type Path struct {
	base
	pathType  PathType
	mustExist bool
}

// NewPath declares a path parameter of the given type.
func NewPath(name string, pathType PathType) (*Path, error) {
	if pathType != PathFile && pathType != PathDir {
		return nil, invalidConfig(name, "Invalid type provided: expected %q or %q, got %q", PathDir, PathFile, pathType)
	}
	return &Path{base: newBase(name), pathType: pathType}, nil
}

// Mode returns ModeRequired.
func (p *Path) Mode() Mode { return ModeRequired }

// PathType returns the expected path type.
func (p *Path) PathType() PathType { return p.pathType }

// SetMustExist requires the path to exist on disk.
func (p *Path) SetMustExist(mustExist bool) { p.mustExist = mustExist }

// Prompt returns a text prompt with filesystem autocompletion.
func (p *Path) Prompt() *Prompt {
	prompt := p.textPrompt(pathValidator(p.required, p.mustExist, p.pathType), nil)
	prompt.Autocomplete = CompletePath
	return prompt
}

func pathValidator(required, mustExist bool, pathType PathType) Validator {
	return func(value interface{}) (interface{}, error) {
		if !required && IsBlank(value) {
			return value, nil
		}

		s, ok := value.(string)
		if !ok {
			return nil, invalidValue("Invalid value: string expected, %s given", TypeName(value))
		}

		if !mustExist {
			return s, nil
		}

		info, err := os.Stat(s)
		if err != nil {
			return nil, invalidValue("Path does not exist")
		}

		if pathType == PathDir && !info.IsDir() {
			return nil, invalidValue("Path is not a valid directory")
		}

		return s, nil
	}
}

// CompletePath lists the entries of the directory named by input up to its
// last "/", each prefixed with that directory. Input without a slash
// completes against the current directory.
func CompletePath(input string) []string {
	dir := ""
	if i := strings.LastIndex(input, "/"); i >= 0 {
		dir = input[:i+1]
	}
	if dir == "" {
		dir = "."
	}
	dir = strings.TrimRight(dir, `/\`) + "/"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, dir+entry.Name())
	}
	return candidates
}
