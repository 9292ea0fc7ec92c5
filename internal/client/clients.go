package client

import (
	"github.com/DanRulev/ordkort.git/internal/config"
	"go.uber.org/zap"
)

type Clients struct {
	*OpenAIAPI
	*MyMemoryAPI
}

func InitClients(cfg config.Config, log *zap.Logger) Clients {
	return Clients{
		OpenAIAPI:   NewOpenAIAPI(cfg.Generator, log),
		MyMemoryAPI: NewMyMemoryAPI(cfg.Translator),
	}
}
