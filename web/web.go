// Package web serves the browser client: the login page, the page picker
// and a help page rendered from markdown.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html static/* docs/help.md
var files embed.FS

// Options configures values the browser client needs to know up front.
type Options struct {
	MaxFileSize int64
}

// Register mounts the web UI on r.
func Register(r *gin.Engine, opts Options) error {
	tmpl, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(files, "static")
	if err != nil {
		return err
	}
	r.StaticFS("/static", http.FS(static))

	help, err := renderHelp()
	if err != nil {
		return err
	}

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "PDF Splitter - Sign in",
		})
	})
	r.GET("/app", func(c *gin.Context) {
		c.HTML(http.StatusOK, "app.html", gin.H{
			"title":       "PDF Splitter",
			"maxFileSize": opts.MaxFileSize,
		})
	})
	r.GET("/help", func(c *gin.Context) {
		c.HTML(http.StatusOK, "help.html", gin.H{
			"title":   "PDF Splitter - Help",
			"content": help,
		})
	})
	return nil
}

// renderHelp converts the embedded guide once at startup.
func renderHelp() (template.HTML, error) {
	src, err := files.ReadFile("docs/help.md")
	if err != nil {
		return "", err
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render help: %w", err)
	}
	return template.HTML(buf.String()), nil
}
