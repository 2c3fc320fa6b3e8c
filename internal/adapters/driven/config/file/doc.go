// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage with an fsnotify
//     watcher so a running TUI picks up edits to config.toml
package file
