// Package app defines the runtime contract shared by cmd/* entrypoints.
//
// It lets a binary start the bridge client without depending on how the
// client wires its wallet, registry and HTTP surface.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
