package ui

// Observer mirrors engine state to an outside party. The engine calls it
// synchronously and never depends on its behaviour.
type Observer interface {
	// FocusChanged reports the newly focused widget's ID, or "" when
	// nothing is focused.
	FocusChanged(id string)
	// StateChanged reports that a widget's visible state changed.
	StateChanged(id string)
	LayerPushed(generation uint64, km KeymapContext)
	LayerPopped(generation uint64)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) FocusChanged(string)                {}
func (NopObserver) StateChanged(string)                {}
func (NopObserver) LayerPushed(uint64, KeymapContext)  {}
func (NopObserver) LayerPopped(uint64)                 {}
