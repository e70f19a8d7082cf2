package app

import (
	"go-salarydash/internal/dataset"

	"github.com/gin-gonic/gin"
)

type Config struct {
	DatasetPath string
	MapJobTitle string
}

// BuildApp wires dependencies and routes. The dataset store is lazy: the
// CSV is read on the first request that needs it and cached for the
// process lifetime.
func BuildApp(router *gin.Engine, cfg Config) error {
	store := dataset.NewStore(cfg.DatasetPath)

	return registerModules(router, store, cfg)
}
