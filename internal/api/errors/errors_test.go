package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
		{ErrorKind("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, (&APIError{Kind: tt.kind}).HTTPStatus())
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("ffmpeg crashed")
	err := WrapError(cause, KindInternal, "Error processing audio")

	assert.Equal(t, "Error processing audio: ffmpeg crashed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, WrapError(nil, KindInternal, "x"))
}
