package router

import (
	"github.com/chronos-tachyon/huffcode/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	CodebookHandler *handler.CodebookHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		codebooks := v1.Group("/codebooks")
		{
			codebooks.POST("", d.CodebookHandler.Create)
			codebooks.GET("", d.CodebookHandler.List)
			codebooks.GET("/:name", d.CodebookHandler.Get)
			codebooks.DELETE("/:name", d.CodebookHandler.Delete)
			codebooks.POST("/:name/encode", d.CodebookHandler.Encode)
			codebooks.POST("/:name/decode", d.CodebookHandler.Decode)
		}
	}
}
