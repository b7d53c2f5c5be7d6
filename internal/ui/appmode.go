package ui

// AppMode is the interaction mode; it scopes which keybinding hints are shown.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeFilter
	ModeDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeFilter:
		return "Filter"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// moder is implemented by views that report their interaction mode.
type moder interface {
	Mode() AppMode
}
