package httpapi

import (
	"net/http"
	"time"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/gin-gonic/gin"
)

type tokenResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

type authStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func (h *Handler) Register(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondValidation(c, "invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), creds)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	h.respondToken(c, http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondValidation(c, "invalid request body")
		return
	}

	user, err := h.service.Login(c.Request.Context(), creds)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	h.respondToken(c, http.StatusOK, user)
}

// AuthStatus never fails on a bad token, it reports the caller as anonymous.
func (h *Handler) AuthStatus(c *gin.Context) {
	userID, err := bearerUser(c, h.tokens)
	if err != nil {
		RespondOK(c, authStatusResponse{})
		return
	}

	user, err := h.service.UserByID(c.Request.Context(), userID)
	if err != nil {
		RespondOK(c, authStatusResponse{})
		return
	}

	RespondOK(c, authStatusResponse{Authenticated: true, User: &user})
}

func (h *Handler) respondToken(c *gin.Context, status int, user models.User) {
	token, expires, err := h.tokens.Issue(user.ID)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(status, tokenResponse{Token: token, ExpiresAt: expires, User: user})
}
