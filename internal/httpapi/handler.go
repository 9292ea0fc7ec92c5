package httpapi

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultEntriesLimit = 20
	maxEntriesLimit     = 100
)

type Handler struct {
	service ServiceI
	tokens  *TokenIssuer
	log     *zap.Logger
}

func NewHandler(service ServiceI, tokens *TokenIssuer, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondValidation(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter. present is false when
// the parameter is absent.
func queryInt(c *gin.Context, name string) (value int, present bool, err error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(raw)
	return value, true, err
}

func queryBool(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}

// currentUser is only valid behind RequireAuth.
func currentUser(c *gin.Context) int64 {
	id, _ := userIDFrom(c)
	return id
}
