package cli

import "github.com/alexanderramin/smartfarm/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Profile is the in-memory copy of the stored profile. Views replace it
	// after a successful save.
	Profile domain.UserProfile

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
