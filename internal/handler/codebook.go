package handler

import (
	"errors"
	"net/http"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/model"
	"github.com/chronos-tachyon/huffcode/internal/repo"
	"github.com/chronos-tachyon/huffcode/internal/service"

	"github.com/gin-gonic/gin"
)

type CodebookHandler struct {
	svc     *service.CodebookService
	maxBody int64
}

// NewCodebookHandler sizes the request body limit from cfg.  JSON escaping
// can expand a byte of message to six bytes of body, plus some slack for the
// rest of the document.
func NewCodebookHandler(s *service.CodebookService, cfg config.Config) *CodebookHandler {
	maxBody := 6*int64(cfg.MaxMessage) + 64*int64(cfg.MaxAlphabet) + 4096
	return &CodebookHandler{svc: s, maxBody: maxBody}
}

func (h *CodebookHandler) bind(c *gin.Context, req any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	if err := c.ShouldBindJSON(req); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error(), "kind": "too_large"})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "bad_request"})
		return false
	}
	return true
}

type createCodebookReq struct {
	Name        string            `json:"name" binding:"required"`
	Frequencies []model.Frequency `json:"frequencies"`
	Sample      string            `json:"sample"`
}

type encodeReq struct {
	Message string `json:"message"`
}

type decodeReq struct {
	Bits  string `json:"bits"`
	Count *int   `json:"count"`
}

func (h *CodebookHandler) Create(c *gin.Context) {
	var req createCodebookReq
	if !h.bind(c, &req) {
		return
	}
	cb, err := h.svc.Create(req.Name, req.Frequencies, req.Sample)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cb.View())
}

func (h *CodebookHandler) Get(c *gin.Context) {
	cb, err := h.svc.Get(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cb.View())
}

func (h *CodebookHandler) List(c *gin.Context) {
	names, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"codebooks": names})
}

func (h *CodebookHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("name")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CodebookHandler) Encode(c *gin.Context) {
	var req encodeReq
	if !h.bind(c, &req) {
		return
	}
	bits, err := h.svc.Encode(c.Param("name"), req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bits": bits})
}

func (h *CodebookHandler) Decode(c *gin.Context) {
	var req decodeReq
	if !h.bind(c, &req) {
		return
	}
	msg, err := h.svc.Decode(c.Param("name"), req.Bits, req.Count)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func writeError(c *gin.Context, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, repo.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, repo.ErrExists):
		status, kind = http.StatusConflict, "exists"
	case errors.Is(err, service.ErrInvalidRequest):
		status, kind = http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrTooLarge):
		status, kind = http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, huffcode.ErrInvalidInput):
		status, kind = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, huffcode.ErrUnknownSymbol):
		status, kind = http.StatusUnprocessableEntity, "unknown_symbol"
	case errors.Is(err, huffcode.ErrMalformedInput):
		status, kind = http.StatusUnprocessableEntity, "malformed_input"
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
}
