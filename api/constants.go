package api

import "time"

const (
	// SessionCookieName is the cookie carrying the session marker
	SessionCookieName = "session"

	// SessionCookieValue is the only value accepted as an authenticated session
	SessionCookieValue = "authenticated"

	// SessionMaxAge is the session cookie lifetime
	SessionMaxAge = 24 * time.Hour

	// DefaultMaxFileSize is the largest PDF accepted for extraction (50MB)
	DefaultMaxFileSize = 50 * 1024 * 1024

	// MultipartMemory is how much of a multipart body is held in memory before spilling to disk
	MultipartMemory = 8 << 20

	// OutputFileSuffix is appended to the uploaded file's name for the download
	OutputFileSuffix = "extracted"
)

// Client-visible error messages
const (
	msgMissingCredentials = "Username and password are required"
	msgInvalidCredentials = "Invalid credentials"
	msgUnauthorized       = "Unauthorized"
	msgNoFile             = "No PDF file provided"
	msgNoPages            = "No pages specified"
	msgInvalidPageFormat  = "Invalid page format"
	msgInternal           = "Internal server error"
	msgProcessingFailed   = "Internal server error while processing the PDF"
)
