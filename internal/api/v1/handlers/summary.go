package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "call-summary/internal/api/errors"
	"call-summary/internal/api/middleware"
	"call-summary/internal/api/v1/dto"
	"call-summary/internal/app/model"
	"call-summary/internal/config"
)

// APIKeyHeader optionally carries a per-request OpenAI key
const APIKeyHeader = "X-API-Key"

// DegradedHeader reports whether any stage used a fallback strategy
const DegradedHeader = "X-Callsum-Degraded"

// Processor runs the full pipeline for one recording
type Processor interface {
	Process(ctx context.Context, audio model.AudioInput, creds config.Credentials) (*model.Result, error)
}

// SummaryHandler serves the generate-summary endpoint
type SummaryHandler struct {
	processor Processor
	creds     config.Credentials
}

// NewSummaryHandler creates a handler. creds are the server's own
// credentials; requests may override the OpenAI key.
func NewSummaryHandler(processor Processor, creds config.Credentials) *SummaryHandler {
	return &SummaryHandler{
		processor: processor,
		creds:     creds,
	}
}

// Generate handles POST /api/generate-summary
//
// @Summary Summarize a recorded call
// @Description Transcribes the uploaded audio, writes a Markdown summary and suggests three titles
// @Tags summaries
// @Accept multipart/form-data
// @Produce json
// @Param audio_file formData file true "Recorded call"
// @Param X-API-Key header string false "OpenAI API key for this request only"
// @Success 200 {object} dto.GenerateSummaryResponse "Summary, titles and transcript"
// @Failure 400 {object} errors.APIError "Missing or unreadable upload"
// @Failure 500 {object} errors.APIError "Processing failed"
// @Router /generate-summary [post]
func (h *SummaryHandler) Generate(c *gin.Context) {
	var req dto.GenerateSummaryRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	audio, err := readUpload(req.AudioFile)
	if err != nil {
		middleware.HandleError(c, apierrors.WrapError(err, apierrors.KindBadRequest, "Error reading upload"))
		return
	}

	creds := h.creds.WithOpenAIOverride(c.GetHeader(APIKeyHeader))

	result, err := h.processor.Process(c.Request.Context(), audio, creds)
	if err != nil {
		middleware.HandleError(c, apierrors.WrapError(err, apierrors.KindInternal, "Error processing audio"))
		return
	}

	c.Header(DegradedHeader, strconv.FormatBool(result.Degraded()))
	c.JSON(http.StatusOK, dto.ToGenerateSummaryResponse(result))
}

func readUpload(header *multipart.FileHeader) (model.AudioInput, error) {
	file, err := header.Open()
	if err != nil {
		return model.AudioInput{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return model.AudioInput{}, err
	}
	return model.NewAudioInput(header.Filename, data), nil
}
