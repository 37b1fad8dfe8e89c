// Package config loads omni's two configuration sources.
//
// The repository configuration is the first of .omni.yaml, .omni.yml,
// .omni/config.yaml, .omni/config.yml or .omni.toml found at the
// repository root. omni reads its "up" list and its "path" section and
// ignores every other key.
//
// Settings are omni's own knobs: embedded defaults overridden by OMNI_*
// environment variables (OMNI_USER_CONFIG, OMNI_LOG_FILE, OMNI_NO_COLOR,
// OMNI_UPDATE_USER_CONFIG).
package config
