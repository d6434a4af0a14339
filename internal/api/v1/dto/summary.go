package dto

import (
	"mime/multipart"

	apierrors "call-summary/internal/api/errors"
	"call-summary/internal/app/model"
)

// GenerateSummaryRequest is the multipart upload accepted by generate-summary
type GenerateSummaryRequest struct {
	AudioFile *multipart.FileHeader `form:"audio_file" binding:"required"`
}

// Validate rejects empty uploads
func (r *GenerateSummaryRequest) Validate() error {
	if r.AudioFile.Size == 0 {
		return apierrors.NewBadRequestError("uploaded file is empty")
	}
	return nil
}

// GenerateSummaryResponse is the result of one processed recording
type GenerateSummaryResponse struct {
	Summary         string   `json:"summary" example:"## Meeting Summary\n\n...\n\n## Key Points\n\n- ..."`
	SuggestedTitles []string `json:"suggested_titles" example:"Budget Discussion Summary,Budget Strategy Session,Quarterly Budget Update"`
	FullTranscript  string   `json:"full_transcript" example:"Speaker A: Hello."`
}

// ToGenerateSummaryResponse converts a pipeline result to the response DTO
func ToGenerateSummaryResponse(res *model.Result) GenerateSummaryResponse {
	return GenerateSummaryResponse{
		Summary:         res.Summary,
		SuggestedTitles: res.Titles,
		FullTranscript:  res.Transcript,
	}
}
