package ui

// AppMode is what currently receives keyboard input.
type AppMode int

const (
	ModeTracker AppMode = iota // palette and result panels
	ModeHelp                   // help overlay open
	ModeConfirm                // reset confirmation open
)

func (m AppMode) String() string {
	switch m {
	case ModeTracker:
		return "Tracker"
	case ModeHelp:
		return "Help"
	case ModeConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}
