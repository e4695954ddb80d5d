package viewstate

import (
	"slices"

	"github.com/taneeshamadhu18/video-call-assignment/internal/domain"
)

// ViewMode selects how the participant page is laid out.
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewGrid ViewMode = "grid"
)

func (v ViewMode) valid() bool { return v == ViewList || v == ViewGrid }

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) valid() bool { return t == ThemeLight || t == ThemeDark }

// MediaKind names a local capture device.
type MediaKind string

const (
	MediaMicrophone MediaKind = "microphone"
	MediaCamera     MediaKind = "camera"
)

// MediaState is what this session is actually capturing. It is owned by the
// console and never derived from the server's mic_on/camera_on intent flags.
type MediaState struct {
	MicCapturing    bool `json:"mic_capturing"`
	CameraCapturing bool `json:"camera_capturing"`
}

func (m *MediaState) set(kind MediaKind, on bool) {
	switch kind {
	case MediaMicrophone:
		m.MicCapturing = on
	case MediaCamera:
		m.CameraCapturing = on
	}
}

// Capturing reports whether kind is currently captured.
func (m MediaState) Capturing(kind MediaKind) bool {
	if kind == MediaCamera {
		return m.CameraCapturing
	}
	return m.MicCapturing
}

// State is the full view state. Values handed out by the controller are
// copies; mutating them has no effect on the controller.
type State struct {
	Page            int
	PageSize        int
	Search          string
	DebouncedSearch string
	ViewMode        ViewMode
	Theme           Theme

	Participants []domain.Participant
	Total        int
	Selected     *domain.Participant
	Loading      bool
	Error        string

	Media MediaState
}

// HasPrev reports whether a previous page exists.
func (s State) HasPrev() bool { return s.Page > 0 }

// HasNext reports whether the exact total leaves rows beyond this page.
func (s State) HasNext() bool { return (s.Page+1)*s.PageSize < s.Total }

// PageCount is the number of pages for the current total, at least 1.
func (s State) PageCount() int {
	if s.Total <= 0 || s.PageSize <= 0 {
		return 1
	}
	return (s.Total + s.PageSize - 1) / s.PageSize
}

func (s State) clone() State {
	out := s
	out.Participants = slices.Clone(s.Participants)
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}

// replace swaps the participant with the same id in place. It reports
// whether a row was replaced.
func (s *State) replace(p domain.Participant) bool {
	for i := range s.Participants {
		if s.Participants[i].ID == p.ID {
			s.Participants[i] = p
			return true
		}
	}
	return false
}
