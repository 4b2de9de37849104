package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	pdfPkg "pdf_splitter/pdf"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func HandleLogin(c *gin.Context, config *Config) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isMissingField(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingCredentials})
			return
		}
		logf(c, "login: parse request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingCredentials})
		return
	}

	ok, err := config.Verifier.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logf(c, "login: verify credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
		return
	}

	config.Sessions.Issue(c.Writer)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// isMissingField reports whether a bind error means a field was absent,
// empty or of the wrong type, as opposed to an unreadable body.
func isMissingField(err error) bool {
	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &validationErrs) || errors.As(err, &typeErr) || errors.Is(err, io.EOF)
}

func HandleLogout(c *gin.Context, config *Config) {
	config.Sessions.Revoke(c.Writer)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func HandleMe(c *gin.Context, config *Config) {
	if !config.Sessions.Validate(c.Request) {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func HandleSplit(c *gin.Context, config *Config) {
	// The body may carry the file plus form overhead; anything past twice the
	// file limit is rejected up front when the length is declared, and while
	// parsing otherwise.
	bodyLimit := 2 * config.MaxFileSize
	if c.Request.ContentLength > bodyLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": fileTooLargeMessage(config.MaxFileSize)})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)
	if err := c.Request.ParseMultipartForm(MultipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fileTooLargeMessage(config.MaxFileSize)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoFile})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoFile})
		return
	}
	defer file.Close()

	pagesParam := c.PostForm("pages")
	if pagesParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoPages})
		return
	}

	if header.Size > config.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": fileTooLargeMessage(config.MaxFileSize)})
		return
	}

	pages, err := pdfPkg.ParsePageList(pagesParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPageFormat})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		logf(c, "split: read upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgProcessingFailed})
		return
	}

	ctx := c.Request.Context()
	totalPages, err := config.Engine.PageCount(ctx, data)
	if err != nil {
		logf(c, "split: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgProcessingFailed})
		return
	}

	if err := pdfPkg.ValidatePageNumbers(pages, totalPages); err != nil {
		var rangeErr *pdfPkg.PageRangeError
		if !errors.As(err, &rangeErr) {
			logf(c, "split: validate pages: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgProcessingFailed})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         rangeErr.Error(),
			"invalid_pages": rangeErr.Pages,
			"total_pages":   rangeErr.TotalPages,
		})
		return
	}

	out, err := config.Engine.Extract(ctx, data, pages)
	if err != nil {
		logf(c, "split: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgProcessingFailed})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outputFilename(header.Filename)))
	c.Header("Content-Length", strconv.Itoa(len(out)))
	c.Data(http.StatusOK, "application/pdf", out)
}

func fileTooLargeMessage(maxSize int64) string {
	if maxSize%(1024*1024) != 0 {
		return fmt.Sprintf("File is too large. Maximum %d bytes", maxSize)
	}
	return fmt.Sprintf("File is too large. Maximum %dMB", maxSize/(1024*1024))
}

// outputFilename derives the download name from the uploaded file's name
func outputFilename(originalName string) string {
	stem := sanitizeFilename(originalName)
	if strings.HasSuffix(strings.ToLower(stem), ".pdf") {
		stem = stem[:len(stem)-4]
	}
	if stem == "" {
		stem = "document"
	}
	return stem + "_" + OutputFileSuffix + ".pdf"
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.ReplaceAll(filename, "\"", "")

	filename = strings.TrimSpace(filepath.Base(filename))
	if filename == "." {
		return ""
	}
	return filename
}
