// Package paths locates the files omni works with.
//
// It handles:
//
//   - Repository root discovery (go-git, walking up to the enclosing .git)
//   - The user configuration file location (XDG config home)
//   - Home directory expansion
//
// # Environment Variables
//
//   - OMNI_GIT_REPO_ROOT: use this directory as the repository root
//   - OMNI_USER_CONFIG: user configuration file (default: $XDG_CONFIG_HOME/omni/config.yaml)
package paths
