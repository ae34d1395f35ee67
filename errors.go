package ui

import "errors"

var (
	// ErrLayerPopped is returned by modal waits whose layer was popped
	// by someone else.
	ErrLayerPopped = errors.New("ui: layer popped during wait")

	// ErrNoEventSource is returned by blocking helpers on a root without
	// an EventReader.
	ErrNoEventSource = errors.New("ui: root has no event source")
)
