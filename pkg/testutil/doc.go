// Package testutil provides utilities for testing omni components.
//
// Key components:
//   - Journal / RecordingOperation: operations that record every action
//     invocation and return scripted results, for pipeline ordering tests
//   - TestEnvironment: an isolated git repository, HOME and XDG dirs
//
// Each test should be completely isolated with no shared state.
package testutil
