// Package submodule reads submodule state through the go-git library.
// All repository discovery, enumeration, and diffing happens in the
// library; this package only translates its answers into report values.
package submodule

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"

	"github.com/chmouel/gitsub/internal/models"
)

// ErrNoRepository reports that no git repository contains the start path.
var ErrNoRepository = errors.New("no git repository found")

// Entry pairs a submodule with its computed status report.
type Entry struct {
	Info   models.SubmoduleInfo
	Report models.Report
}

// Service answers submodule queries for one discovered repository.
type Service struct {
	repo          *gogit.Repository
	root          string
	showUntracked bool
}

// Discover opens the repository containing dir, walking up the directory
// tree the way git itself does.
func Discover(dir string, showUntracked bool) (*Service, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w at %s", ErrNoRepository, dir)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("reading worktree: %w", err)
	}

	return &Service{
		repo:          repo,
		root:          wt.Filesystem.Root(),
		showUntracked: showUntracked,
	}, nil
}

// Root returns the absolute path of the discovered worktree root.
func (s *Service) Root() string {
	return s.root
}

func (s *Service) submodules() (gogit.Submodules, error) {
	wt, err := s.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("reading worktree: %w", err)
	}
	subs, err := wt.Submodules()
	if err != nil {
		return nil, fmt.Errorf("enumerating submodules: %w", err)
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].Config().Name < subs[j].Config().Name
	})
	return subs, nil
}

// List enumerates the repository's submodules sorted by name.
func (s *Service) List() ([]models.SubmoduleInfo, error) {
	subs, err := s.submodules()
	if err != nil {
		return nil, err
	}

	infos := make([]models.SubmoduleInfo, 0, len(subs))
	for _, sub := range subs {
		c := sub.Config()
		infos = append(infos, models.SubmoduleInfo{
			Name:   c.Name,
			Path:   c.Path,
			Exists: s.repositoryExists(c.Path),
		})
	}
	return infos, nil
}

// Status enumerates submodules with their status reports, sorted by name.
func (s *Service) Status() ([]Entry, error) {
	subs, err := s.submodules()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(subs))
	for _, sub := range subs {
		c := sub.Config()
		info := models.SubmoduleInfo{
			Name:   c.Name,
			Path:   c.Path,
			Exists: s.repositoryExists(c.Path),
		}
		report, err := s.report(sub, info)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Info: info, Report: report})
	}
	return entries, nil
}

// repositoryExists reports whether a local repository has been checked out
// for the submodule path. Opening follows the .git gitdir redirect into
// the superproject's modules directory.
func (s *Service) repositoryExists(path string) bool {
	_, err := gogit.PlainOpenWithOptions(filepath.Join(s.root, path), &gogit.PlainOpenOptions{})
	return err == nil
}

// report computes the classification and change list for one submodule.
func (s *Service) report(sub *gogit.Submodule, info models.SubmoduleInfo) (models.Report, error) {
	if !info.Exists {
		return models.Report{Classification: models.Uninitialized}, nil
	}

	subStatus, err := sub.Status()
	if err != nil {
		return models.Report{}, fmt.Errorf("submodule %s status: %w", info.Name, err)
	}

	// Without both the recorded and the checked-out revision the state
	// cannot be classified.
	if subStatus.Expected.IsZero() || subStatus.Current.IsZero() {
		return models.Report{Classification: models.Unknown}, nil
	}

	subRepo, err := gogit.PlainOpenWithOptions(filepath.Join(s.root, info.Path), &gogit.PlainOpenOptions{})
	if err != nil {
		return models.Report{}, fmt.Errorf("opening submodule %s: %w", info.Name, err)
	}
	wt, err := subRepo.Worktree()
	if err != nil {
		return models.Report{}, fmt.Errorf("submodule %s worktree: %w", info.Name, err)
	}
	worktreeStatus, err := wt.Status()
	if err != nil {
		return models.Report{}, fmt.Errorf("submodule %s diff: %w", info.Name, err)
	}

	changes := changesFromStatus(worktreeStatus, s.showUntracked)

	report := models.Report{Changes: changes}
	switch {
	case len(changes) > 0:
		report.Classification = models.Dirty
	case subStatus.Current != subStatus.Expected:
		// Recorded revision is stale but the worktree itself is
		// untouched. The entry renders nothing; the classification
		// still flags it.
		report.Classification = models.Dirty
		report.Changes = []models.Change{{Kind: models.NeedsUpdate, Path: info.Path}}
	default:
		report.Classification = models.Clean
	}
	return report, nil
}

// changesFromStatus converts a go-git worktree status into an ordered
// change list. Map iteration is unordered, so entries are sorted by path.
func changesFromStatus(status gogit.Status, showUntracked bool) []models.Change {
	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var changes []models.Change
	for _, path := range paths {
		fileStatus := status[path]
		switch {
		case fileStatus.Staging == gogit.Untracked && fileStatus.Worktree == gogit.Untracked:
			if showUntracked {
				changes = append(changes, models.Change{Kind: models.Untracked, Path: path})
			}
		case fileStatus.Staging == gogit.UpdatedButUnmerged || fileStatus.Worktree == gogit.UpdatedButUnmerged:
			changes = append(changes, models.Change{Kind: models.Conflicted, Path: path})
		case fileStatus.Staging == gogit.Renamed:
			changes = append(changes, models.Change{Kind: models.Renamed, Path: path, From: fileStatus.Extra})
		case fileStatus.Staging == gogit.Copied:
			changes = append(changes, models.Change{Kind: models.Copied, Path: path, From: fileStatus.Extra})
		case fileStatus.Staging == gogit.Added:
			changes = append(changes, models.Change{Kind: models.Added, Path: path})
		case fileStatus.Staging == gogit.Unmodified && fileStatus.Worktree == gogit.Unmodified:
			// Stat-only refresh, nothing to report.
		default:
			changes = append(changes, models.Change{Kind: models.Modified, Path: path})
		}
	}
	return changes
}
