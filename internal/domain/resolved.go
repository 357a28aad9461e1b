package domain

// PathKind distinguishes file and directory save locations.
type PathKind string

const (
	KindFile PathKind = "file"
	KindDir  PathKind = "dir"
)

// ResolvedPath is a concrete, existing save location discovered by resolving
// a hint against the current machine.
type ResolvedPath struct {
	Path string
	Kind PathKind
}

// IsDir reports whether the resolved path is a directory.
func (p ResolvedPath) IsDir() bool {
	return p.Kind == KindDir
}
