package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/go-git/go-git/v5"
)

// Environment variable names
const (
	// EnvRepoRoot overrides repository root discovery
	EnvRepoRoot = "OMNI_GIT_REPO_ROOT"

	// EnvUserConfig overrides the user configuration file location
	EnvUserConfig = "OMNI_USER_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "omni"

	// UserConfigFileName is the default user configuration file name
	UserConfigFileName = "config.yaml"
)

// FindRepoRoot returns the root of the work tree containing start.
// An empty start means the current working directory.
func FindRepoRoot(start string) (string, error) {
	if root := os.Getenv(EnvRepoRoot); root != "" {
		abs, err := filepath.Abs(ExpandHome(root))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrNotInRepo, "invalid %s", EnvRepoRoot)
		}
		return abs, nil
	}

	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrNotInRepo, "failed to get current directory")
		}
		start = cwd
	}

	repo, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotInRepo, "can only be run from a git repository").
			WithDetail("dir", start)
	}

	// Bare repositories have no work tree to set up
	wt, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotInRepo, "can only be run from a git repository").
			WithDetail("dir", start)
	}

	return wt.Filesystem.Root(), nil
}

// UserConfigFile returns the path of the user configuration file
func UserConfigFile() string {
	if file := os.Getenv(EnvUserConfig); file != "" {
		return ExpandHome(file)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, UserConfigFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// ~user is left alone
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
