package V1

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/hander"
	"ttsserver/pkg/log"
	"ttsserver/serve"
	"ttsserver/usecase"
)

type TtsHander struct {
	*hander.BaseHandler

	log           *log.Logger
	ttsUsecase    *usecase.TtsUsecase
	publicBaseURL string
}

func NewTtsHander(s *serve.HttpServer, c *config.Config, log *log.Logger, base *hander.BaseHandler, ttsUsecase *usecase.TtsUsecase) *TtsHander {
	h := &TtsHander{
		BaseHandler:   base,
		log:           log.WithModule("TtsHander"),
		ttsUsecase:    ttsUsecase,
		publicBaseURL: c.PublicBaseURL,
	}
	s.Echo.GET("/voices", h.ListVoices)
	s.Echo.POST("/synthesize", h.Synthesize)
	s.Echo.GET("/download/:filename", h.Download)
	s.Echo.GET("/verify", h.Verify)
	return h
}

// ListVoices godoc
// @Summary List voices
// @Description Lists every voice the provider offers
// @Tags TTS
// @Produce json
// @Success 200 {object} domain.VoiceList
// @Router /voices [get]
func (h *TtsHander) ListVoices(c echo.Context) error {
	return h.NewResponseWithData(c, domain.VoiceList{Voices: h.ttsUsecase.ListVoices()})
}

// Synthesize godoc
// @Summary Synthesize SSML
// @Description Chunks the SSML, synthesizes every chunk and stores one audio file
// @Tags TTS
// @Accept json
// @Produce json
// @Param req body domain.SynthesizeReq true "SSML or text, voice and format"
// @Success 200 {object} domain.SynthesizeResp
// @Failure 400 {object} domain.ErrorResp
// @Failure 500 {object} domain.ErrorResp
// @Router /synthesize [post]
func (h *TtsHander) Synthesize(c echo.Context) error {
	var req domain.SynthesizeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResp{Error: "Invalid request body"})
	}
	in := usecase.SynthesizeInput{
		Ssml:        req.Ssml,
		Text:        req.Text,
		VoiceName:   lo.CoalesceOrEmpty(req.VoiceName, req.Voice),
		AudioFormat: lo.CoalesceOrEmpty(req.AudioFormat, req.Format),
	}
	out, err := h.ttsUsecase.Synthesize(c.Request().Context(), in)
	if err != nil {
		return h.NewResponseWithError(c, "Failed to synthesize audio", err)
	}
	return h.NewResponseWithData(c, domain.SynthesizeResp{
		Message:     "Audio generated successfully",
		DownloadUrl: h.publicBaseURL + "/download/" + out.FileName,
		Chunks:      out.Chunks,
		VoiceUsed:   out.VoiceUsed,
	})
}

// Download godoc
// @Summary Download audio
// @Description Streams a previously synthesized file as an attachment
// @Tags TTS
// @Produce octet-stream
// @Param filename path string true "File name returned by /synthesize"
// @Success 200 {file} file
// @Failure 404 {object} domain.ErrorResp
// @Router /download/{filename} [get]
func (h *TtsHander) Download(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("filename"))
	if err != nil {
		return h.NewResponseWithError(c, "Failed to open audio", domain.ErrInvalidFileName)
	}
	rc, size, err := h.ttsUsecase.Open(c.Request().Context(), name)
	if err != nil {
		return h.NewResponseWithError(c, "Failed to open audio", err)
	}
	defer rc.Close()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	if size >= 0 {
		resp.Header().Set(echo.HeaderContentLength, strconv.FormatInt(size, 10))
	}
	return c.Stream(http.StatusOK, domain.ContentTypeForFile(name), rc)
}

// Verify godoc
// @Summary Verify credentials
// @Description Checks that the configured Google credentials work
// @Tags TTS
// @Produce json
// @Success 200 {object} domain.VerifyResp
// @Failure 500 {object} domain.ErrorResp
// @Router /verify [get]
func (h *TtsHander) Verify(c echo.Context) error {
	projectID, err := h.ttsUsecase.Verify(c.Request().Context())
	if err != nil {
		// 凭证问题一律按服务端错误返回
		h.log.Error("credential check failed", log.Error(err))
		return c.JSON(http.StatusInternalServerError, domain.ErrorResp{
			Error:   "Google TTS authentication failed",
			Details: err.Error(),
		})
	}
	return h.NewResponseWithData(c, domain.VerifyResp{
		Message:   "Google TTS credentials valid",
		ProjectId: projectID,
	})
}
