// Package config manages user-level settings stored at ~/.upmkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the author block stamped into generated manifests and the Unity version used
// to derive a package's minimum editor version.
package config
