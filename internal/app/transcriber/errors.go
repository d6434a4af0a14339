package transcriber

import apperrors "call-summary/internal/app/errors"

var errWhisperServerUnset = apperrors.Wrap(apperrors.ErrModelUnavailable, "WHISPER_SERVER_URL not set")
