package api

import (
	"pdf_splitter/pdf"

	"github.com/gin-gonic/gin"
)

// Config holds application configuration
type Config struct {
	Port        string
	MaxFileSize int64
	Engine      pdf.Engine
	Verifier    Verifier
	Sessions    SessionToken
}

func SetupRoutes(r *gin.Engine, config *Config) {
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/login", func(c *gin.Context) { HandleLogin(c, config) })
		apiGroup.POST("/logout", func(c *gin.Context) { HandleLogout(c, config) })
		apiGroup.GET("/me", func(c *gin.Context) { HandleMe(c, config) })
		apiGroup.POST("/split", RequireSession(config.Sessions), func(c *gin.Context) { HandleSplit(c, config) })
	}
}
