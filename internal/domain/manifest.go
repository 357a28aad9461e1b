package domain

// ManifestName is the well-known metadata entry inside every backup archive.
const ManifestName = "__pcsm_paths.json"

// ManifestEntry maps one backed-up save location to its relative root inside
// the archive. Roots are the decimal index of the path in the resolved set,
// which keeps them unique even when two locations share a folder name.
type ManifestEntry struct {
	Original string   `json:"original"`
	Root     string   `json:"root"`
	Kind     PathKind `json:"kind"`
}

// Manifest records where every entry of an archive came from. Without it an
// archive cannot be restored.
type Manifest struct {
	Game  string          `json:"game"`
	Paths []ManifestEntry `json:"paths"`
}

// EntryForRoot returns the manifest entry owning the given archive-relative
// root, or false when the root is not listed.
func (m *Manifest) EntryForRoot(root string) (ManifestEntry, bool) {
	for _, e := range m.Paths {
		if e.Root == root {
			return e, true
		}
	}
	return ManifestEntry{}, false
}
