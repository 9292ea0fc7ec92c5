package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type practiseRequest struct {
	EntryID int64 `json:"entry_id"`
}

func (h *Handler) Flashcards(c *gin.Context) {
	entryID, ok := h.practiseEntry(c)
	if !ok {
		return
	}

	cards, err := h.service.NewFlashcards(c.Request.Context(), currentUser(c), entryID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, cards)
}

func (h *Handler) Cloze(c *gin.Context) {
	entryID, ok := h.practiseEntry(c)
	if !ok {
		return
	}

	cloze, err := h.service.BuildCloze(c.Request.Context(), currentUser(c), entryID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, cloze)
}

// DailyProgress uses the configured window when days is absent or not a
// number. Explicit values are clamped by the service.
func (h *Handler) DailyProgress(c *gin.Context) {
	days, present, err := queryInt(c, "days")
	if !present || err != nil {
		days = h.service.DefaultWindow()
	}

	progress, err := h.service.DailyProgress(c.Request.Context(), currentUser(c), days)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, progress)
}

func (h *Handler) RecordExercise(c *gin.Context) {
	if err := h.service.RecordExercise(c.Request.Context(), currentUser(c)); err != nil {
		RespondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// practiseEntry reads the optional entry_id from the body. Without one a
// random entry of the user is picked.
func (h *Handler) practiseEntry(c *gin.Context) (int64, bool) {
	var req practiseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidation(c, "invalid request body")
		return 0, false
	}
	if req.EntryID < 0 {
		respondValidation(c, "invalid entry_id")
		return 0, false
	}
	if req.EntryID > 0 {
		return req.EntryID, true
	}

	entry, err := h.randomEntry(c.Request.Context(), currentUser(c))
	if err != nil {
		RespondError(c, h.log, err)
		return 0, false
	}
	return entry, true
}

func (h *Handler) randomEntry(ctx context.Context, userID int64) (int64, error) {
	entry, err := h.service.RandomEntry(ctx, userID)
	if err != nil {
		return 0, err
	}
	return entry.ID, nil
}
