package resolver

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// Resolver implements ports.PathResolver against a fixed root table.
type Resolver struct {
	table domain.RootTable
}

// Ensure Resolver implements PathResolver
var _ ports.PathResolver = (*Resolver)(nil)

// New validates the root table once so resolution never runs with a
// half-built substitution map.
func New(table domain.RootTable) (*Resolver, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{table: table}, nil
}

var tokenPattern = regexp.MustCompile(`%[A-Za-z_]+%`)

// Resolve expands each hint, drops the ones that do not exist on this
// machine, and deduplicates the rest. Output order is hint order, so the
// same hints against an unchanged filesystem always produce the same set.
func (r *Resolver) Resolve(game string, hints []string) []domain.ResolvedPath {
	var out []domain.ResolvedPath
	seen := make(map[string]bool)

	for _, hint := range hints {
		p, ok := r.expand(hint)
		if !ok {
			continue
		}
		p, ok = r.probe(game, p)
		if !ok {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			// No save at this candidate location; expected, not an error.
			continue
		}
		key := strings.ToLower(filepath.Clean(p))
		if seen[key] {
			continue
		}
		seen[key] = true

		kind := domain.KindFile
		if info.IsDir() {
			kind = domain.KindDir
		}
		out = append(out, domain.ResolvedPath{Path: p, Kind: kind})
	}

	return out
}

// expand substitutes placeholder tokens and bare prefixes. Hints carrying an
// unknown token are skipped rather than half-expanded.
func (r *Resolver) expand(hint string) (string, bool) {
	p := strings.TrimSpace(hint)
	if p == "" {
		return "", false
	}

	// Hints arrive in the knowledge base's Windows spelling; work in
	// forward slashes and convert to the host separator at the end.
	p = strings.ReplaceAll(p, `\`, "/")

	if rest, ok := cutPrefixFold(p, domain.PrefixHome+"/"); ok {
		p = joinRoot(r.table.Home, rest)
	} else if rest, ok := cutPrefixFold(p, domain.PrefixOneDrive+"/"); ok {
		if r.table.OneDrive == "" {
			return "", false
		}
		p = joinRoot(r.table.OneDrive, rest)
	} else if rest, ok := cutPrefixFold(p, domain.PrefixSavedGames+"/"); ok {
		p = joinRoot(r.table.SavedGames, rest)
	} else if rest, ok := cutPrefixFold(p, domain.PrefixDocuments+"/"); ok {
		p = joinRoot(r.table.Documents, rest)
	}

	unknown := false
	p = tokenPattern.ReplaceAllStringFunc(p, func(tok string) string {
		root, ok := r.table.Tokens[domain.RootToken(strings.ToUpper(tok))]
		if !ok || root == "" {
			unknown = true
			return tok
		}
		return strings.ReplaceAll(root, `\`, "/")
	})
	if unknown {
		return "", false
	}

	return filepath.Clean(filepath.FromSlash(p)), true
}

// probe handles hints with a "*" segment: the first immediate child of the
// preceding directory whose name contains the game name (case-insensitive,
// children in sorted order) takes its place. No match drops the hint.
func (r *Resolver) probe(game, p string) (string, bool) {
	if !strings.Contains(p, "*") {
		return p, true
	}
	if game == "" {
		return "", false
	}

	sep := string(filepath.Separator)
	parts := strings.Split(p, sep)
	if parts[0] == "*" {
		return "", false
	}

	cur := parts[0]
	if cur == "" {
		cur = sep
	}
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		if part == "*" {
			child, ok := matchChild(cur, game)
			if !ok {
				return "", false
			}
			part = child
		}
		if strings.HasSuffix(cur, sep) {
			cur += part
		} else {
			cur += sep + part
		}
	}
	return cur, true
}

// matchChild returns the first subdirectory of dir whose name contains the
// game name. os.ReadDir returns entries sorted by name, which keeps the
// "first match" reproducible.
func matchChild(dir, game string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	needle := strings.ToLower(game)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name()), needle) {
			return e.Name(), true
		}
	}
	return "", false
}

func cutPrefixFold(s, prefix string) (rest string, ok bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}

func joinRoot(root, rest string) string {
	return strings.TrimRight(strings.ReplaceAll(root, `\`, "/"), "/") + "/" + rest
}
