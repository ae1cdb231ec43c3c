// internal/app/messages.go
package app

// ResizeTimeoutMsg applies a debounced terminal resize. Stale versions are ignored.
type ResizeTimeoutMsg struct {
	Version int
}

// FrameMsg advances resize smoothing by one frame.
type FrameMsg struct{}
