package httpapi

import (
	"net/http"
	"strconv"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/gin-gonic/gin"
)

type translateRequest struct {
	Text      string `json:"text"`
	Direction string `json:"direction"`
}

type saveRequest struct {
	Text            string `json:"text"`
	Translation     string `json:"translation"`
	IsExternalInput bool   `json:"is_external_input"`
}

type entriesResponse struct {
	Entries []models.EntryView `json:"entries"`
	Total   int                `json:"total"`
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
}

type examplesResponse struct {
	Examples []models.Example `json:"examples"`
}

func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body")
		return
	}

	translation, err := h.service.Translate(c.Request.Context(), req.Text, req.Direction)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, gin.H{"translation": translation})
}

func (h *Handler) SaveEntry(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body")
		return
	}

	entry, err := h.service.SaveEntry(c.Request.Context(), models.NewEntry{
		UserID:          currentUser(c),
		Text:            req.Text,
		Translation:     req.Translation,
		IsExternalInput: req.IsExternalInput,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) Entries(c *gin.Context) {
	offset, _, err := queryInt(c, "offset")
	if err != nil || offset < 0 {
		respondValidation(c, "invalid offset")
		return
	}
	limit, present, err := queryInt(c, "limit")
	if err != nil || (present && limit <= 0) {
		respondValidation(c, "invalid limit")
		return
	}
	if !present {
		limit = defaultEntriesLimit
	}
	limit = min(limit, maxEntriesLimit)

	views, total, err := h.service.Entries(c.Request.Context(), currentUser(c), offset, limit)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, entriesResponse{Entries: views, Total: total, Offset: offset, Limit: limit})
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), currentUser(c), entryID); err != nil {
		RespondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Examples(c *gin.Context) {
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	examples, err := h.service.Examples(c.Request.Context(), currentUser(c), entryID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, examplesResponse{Examples: examples})
}

// AddExample returns the cached example unless force or append is set.
// max_keep overrides the configured cap for this call.
func (h *Handler) AddExample(c *gin.Context) {
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	maxKeep, _, err := queryInt(c, "max_keep")
	if err != nil || maxKeep < 0 {
		respondValidation(c, "invalid max_keep")
		return
	}

	res, err := h.service.AddExample(c.Request.Context(), currentUser(c), entryID, models.AddExampleOptions{
		Append:  queryBool(c, "append"),
		Force:   queryBool(c, "force"),
		MaxKeep: maxKeep,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, res)
}

func (h *Handler) DeleteExample(c *gin.Context) {
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondValidation(c, "invalid index")
		return
	}

	examples, err := h.service.DeleteExample(c.Request.Context(), currentUser(c), entryID, index)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	RespondOK(c, examplesResponse{Examples: examples})
}
