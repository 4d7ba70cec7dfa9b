package hander

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ttsserver/domain"
	"ttsserver/pkg/log"
)

const voicesHint = "Use /voices to see available voice names."

type BaseHandler struct {
	l *log.Logger
}

func NewBaseHandler(l *log.Logger) *BaseHandler {
	return &BaseHandler{l: l.WithModule("Handler")}
}

func (h *BaseHandler) NewResponseWithData(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// NewResponseWithError maps err onto a status code and the JSON error body.
// Client mistakes get 400, unknown files 404, everything else 500 with the
// underlying error as details.
func (h *BaseHandler) NewResponseWithError(c echo.Context, msg string, err error) error {
	var vnf *domain.VoiceNotFoundError
	switch {
	case errors.As(err, &vnf):
		return c.JSON(http.StatusBadRequest, domain.ErrorResp{
			Error:        vnf.Error(),
			Hint:         voicesHint,
			SampleVoices: vnf.Sample,
		})
	case domain.IsValidation(err):
		return c.JSON(http.StatusBadRequest, domain.ErrorResp{Error: err.Error()})
	case errors.Is(err, domain.ErrFileNotFound), errors.Is(err, domain.ErrInvalidFileName):
		return c.JSON(http.StatusNotFound, domain.ErrorResp{Error: "File not found"})
	}
	h.l.Error(msg, log.String("path", c.Path()), log.Error(err))
	return c.JSON(http.StatusInternalServerError, domain.ErrorResp{
		Error:   msg,
		Details: err.Error(),
	})
}
