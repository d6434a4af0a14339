package tui

import "call-summary/internal/api/v1/dto"

// SummaryLoadedMsg carries the server's answer for the recording.
type SummaryLoadedMsg struct {
	Response *dto.GenerateSummaryResponse
}

// SummaryErrorMsg is sent when the upload or processing fails.
type SummaryErrorMsg struct {
	Err error
}

// SpinnerTickMsg advances the loading spinner.
type SpinnerTickMsg struct{}
