package tui

// Key binding constants used in handleKey.
const (
	KeyQuit       = "q"
	KeyQuitUpper  = "Q"
	KeyCtrlC      = "ctrl+c"
	KeyTab        = "tab"
	KeyShiftTab   = "shift+tab"
	KeyLeft       = "left"
	KeyRight      = "right"
	KeyUp         = "up"
	KeyDown       = "down"
	KeyJ          = "j"
	KeyK          = "k"
	KeyRetry      = "r"
	KeySummary    = "1"
	KeyTitles     = "2"
	KeyTranscript = "3"
)
