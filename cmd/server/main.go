package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/handler"
	"github.com/chronos-tachyon/huffcode/internal/repo"
	"github.com/chronos-tachyon/huffcode/internal/router"
	"github.com/chronos-tachyon/huffcode/internal/service"
	"github.com/chronos-tachyon/huffcode/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	logg := logger.New()

	codebookRepo := repo.NewCodebookRepoInMemory()
	codebookSvc := service.NewCodebookService(codebookRepo, logg, cfg)
	codebookH := handler.NewCodebookHandler(codebookSvc, cfg)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodebookHandler: codebookH,
	})

	addr := ":" + cfg.Port
	logg.Infof("starting server at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
