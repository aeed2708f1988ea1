// Package models defines the data objects shared across gitsub packages.
package models

// Classification summarizes the state of a submodule worktree.
type Classification int

// Classification values for a submodule worktree.
const (
	// Unknown means the submodule repository exists but its state could
	// not be determined (unborn HEAD, missing index entry).
	Unknown Classification = iota
	// Uninitialized means no local repository exists for the submodule.
	Uninitialized
	// Clean means the worktree matches the recorded state.
	Clean
	// Dirty means the worktree differs from the recorded state.
	Dirty
)

// String returns the lowercase classification word used in reports.
func (c Classification) String() string {
	switch c {
	case Uninitialized:
		return "uninitialized"
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// ChangeKind identifies how a path in a submodule worktree changed.
type ChangeKind int

// ChangeKind values.
const (
	Modified ChangeKind = iota
	Conflicted
	Added
	// NeedsUpdate marks an entry whose recorded revision is stale but whose
	// content is unchanged. It produces no output line.
	NeedsUpdate
	Untracked
	Renamed
	Copied
)

// Change is a single entry in a submodule status report. From is only set
// for Renamed and Copied entries and holds the source path.
type Change struct {
	Kind ChangeKind
	Path string
	From string
}

// Report is the computed status of one submodule: a classification plus an
// ordered list of changes. Both are produced by the version-control
// library; the presentation layer only reads them.
type Report struct {
	Classification Classification
	Changes        []Change
}

// SubmoduleInfo summarizes one submodule of a repository. Name keeps the
// raw configured name, which may contain forward or backward slashes.
type SubmoduleInfo struct {
	Name   string
	Path   string
	Exists bool
}
