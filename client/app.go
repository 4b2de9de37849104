package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pdf_splitter/selection"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxFileSize matches the server's upload limit (50MB)
const DefaultMaxFileSize = 50 * 1024 * 1024

var (
	ErrUnauthenticated = errors.New("not signed in")
	ErrNotPDF          = errors.New("file is not a PDF")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrNoDocument      = errors.New("no document loaded")
	ErrNoSelection     = errors.New("no pages selected")
	ErrBusy            = errors.New("an extraction is already in progress")
	ErrPageOutOfRange  = errors.New("page does not exist in the document")
	ErrRangeIndex      = errors.New("no such range")
	ErrLastRange       = errors.New("at least one range is required")
)

type State int

const (
	StateUnauthenticated State = iota
	StateReady
	StateDocumentLoaded
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateReady:
		return "ready"
	case StateDocumentLoaded:
		return "document loaded"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PageCounter reads the number of pages of a PDF. It stands in for the
// renderer that produces previews in the browser.
type PageCounter interface {
	PageCount(ctx context.Context, data []byte) (int, error)
}

// Document is the PDF currently loaded in the App.
type Document struct {
	Name      string
	Data      []byte
	PageCount int
}

// App is the client-side state machine: session check, document loading,
// page selection and extraction.
type App struct {
	client      *Client
	counter     PageCounter
	notifier    *Notifier
	maxFileSize int64

	mu        sync.Mutex
	state     State
	doc       *Document
	selection *selection.Selection
	ranges    []selection.Range
}

type AppOption func(*App)

func WithNotifier(n *Notifier) AppOption {
	return func(a *App) { a.notifier = n }
}

func WithMaxFileSize(size int64) AppOption {
	return func(a *App) { a.maxFileSize = size }
}

func NewApp(c *Client, counter PageCounter, opts ...AppOption) *App {
	a := &App{
		client:      c,
		counter:     counter,
		maxFileSize: DefaultMaxFileSize,
		selection:   selection.New(),
		ranges:      []selection.Range{selection.DefaultRange},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.notifier == nil {
		a.notifier = NewNotifier(DefaultToastDelay, nil)
	}
	return a
}

func (a *App) Notifier() *Notifier {
	return a.notifier
}

func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Document returns the loaded document, or nil.
func (a *App) Document() *Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc
}

// Start checks the session. Without one the App stays unauthenticated and
// ErrUnauthenticated is returned.
func (a *App) Start(ctx context.Context) error {
	ok, err := a.client.Me(ctx)
	if err != nil {
		a.setState(StateUnauthenticated)
		a.notifier.Show(KindError, "Connection error")
		return err
	}
	if !ok {
		a.setState(StateUnauthenticated)
		return ErrUnauthenticated
	}

	a.mu.Lock()
	if a.state == StateUnauthenticated {
		a.state = StateReady
	}
	a.mu.Unlock()
	return nil
}

// Login signs in and then performs the session check.
func (a *App) Login(ctx context.Context, username, password string) error {
	if err := a.client.Login(ctx, username, password); err != nil {
		a.notifier.Show(KindError, errorMessage(err, "Sign in failed"))
		return err
	}
	return a.Start(ctx)
}

// Logout ends the session and drops the loaded document.
func (a *App) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)

	a.mu.Lock()
	a.state = StateUnauthenticated
	a.doc = nil
	a.selection.Clear()
	a.ranges = []selection.Range{selection.DefaultRange}
	a.mu.Unlock()
	return err
}

// Load validates and loads a document, resetting the selection and ranges.
// On failure the previous state is kept.
func (a *App) Load(ctx context.Context, name string, data []byte) error {
	a.mu.Lock()
	state := a.state
	a.mu.Unlock()
	switch state {
	case StateUnauthenticated:
		return ErrUnauthenticated
	case StateSubmitting:
		return ErrBusy
	}

	if !mimetype.Detect(data).Is("application/pdf") {
		a.notifier.Show(KindError, "Please choose a valid PDF file")
		return ErrNotPDF
	}
	if int64(len(data)) > a.maxFileSize {
		a.notifier.Show(KindError, "File is too large. Maximum "+formatSize(a.maxFileSize))
		return ErrFileTooLarge
	}

	pageCount, err := a.counter.PageCount(ctx, data)
	if err != nil {
		a.notifier.Show(KindError, "Could not read the PDF")
		return fmt.Errorf("read document: %w", err)
	}

	a.mu.Lock()
	// The state may have moved on while the page count was read.
	switch a.state {
	case StateUnauthenticated:
		a.mu.Unlock()
		return ErrUnauthenticated
	case StateSubmitting:
		a.mu.Unlock()
		return ErrBusy
	}
	a.doc = &Document{Name: name, Data: data, PageCount: pageCount}
	a.selection.Clear()
	a.ranges = []selection.Range{selection.DefaultRange}
	a.state = StateDocumentLoaded
	a.mu.Unlock()

	a.notifier.Show(KindSuccess, fmt.Sprintf("PDF loaded. %d pages found.", pageCount))
	return nil
}

// Toggle flips the selection of page and reports whether it is now selected.
func (a *App) Toggle(page int) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.doc == nil {
		return false, ErrNoDocument
	}
	if page < 1 || page > a.doc.PageCount {
		return false, ErrPageOutOfRange
	}
	return a.selection.Toggle(page), nil
}

// Selected returns the selected pages in ascending order.
func (a *App) Selected() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selection.Sorted()
}

func (a *App) ClearSelection() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selection.Clear()
}

func (a *App) Ranges() []selection.Range {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]selection.Range(nil), a.ranges...)
}

func (a *App) AddRange() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ranges = append(a.ranges, selection.DefaultRange)
}

func (a *App) RemoveRange(i int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.ranges) {
		return ErrRangeIndex
	}
	if len(a.ranges) == 1 {
		return ErrLastRange
	}
	a.ranges = append(a.ranges[:i], a.ranges[i+1:]...)
	return nil
}

func (a *App) UpdateRange(i int, r selection.Range) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.ranges) {
		return ErrRangeIndex
	}
	a.ranges[i] = r
	return nil
}

// SetRanges replaces the range list. An empty list resets it to the default range.
func (a *App) SetRanges(ranges []selection.Range) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(ranges) == 0 {
		a.ranges = []selection.Range{selection.DefaultRange}
		return
	}
	a.ranges = append([]selection.Range(nil), ranges...)
}

// ApplyRanges merges the range list into the selection and returns how many
// pages the ranges covered.
func (a *App) ApplyRanges() (int, error) {
	a.mu.Lock()
	if a.doc == nil {
		a.mu.Unlock()
		return 0, ErrNoDocument
	}
	n := a.selection.ApplyRanges(a.ranges, a.doc.PageCount)
	a.mu.Unlock()

	if n > 0 {
		a.notifier.Show(KindSuccess, fmt.Sprintf("%d pages selected", n))
	}
	return n, nil
}

// Submit sends the document and the sorted selection for extraction. Only
// one submission runs at a time; the App returns to StateDocumentLoaded
// whatever the outcome.
func (a *App) Submit(ctx context.Context) (*SplitResult, error) {
	a.mu.Lock()
	if a.state == StateSubmitting {
		a.mu.Unlock()
		return nil, ErrBusy
	}
	if a.doc == nil || a.selection.Len() == 0 {
		a.mu.Unlock()
		a.notifier.Show(KindError, "Please select at least one page")
		if a.doc == nil {
			return nil, ErrNoDocument
		}
		return nil, ErrNoSelection
	}
	doc := a.doc
	pages := a.selection.Sorted()
	a.state = StateSubmitting
	a.mu.Unlock()

	res, err := a.client.Split(ctx, doc.Name, doc.Data, pages)

	a.mu.Lock()
	if a.state == StateSubmitting {
		a.state = StateDocumentLoaded
	}
	a.mu.Unlock()

	if err != nil {
		a.notifier.Show(KindError, errorMessage(err, "Could not process the PDF"))
		return nil, err
	}
	a.notifier.Show(KindSuccess, "PDF created and downloaded")
	return res, nil
}

func (a *App) setState(s State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = s
}

func formatSize(size int64) string {
	if size%(1024*1024) != 0 {
		return fmt.Sprintf("%d bytes", size)
	}
	return fmt.Sprintf("%dMB", size/(1024*1024))
}

// errorMessage prefers the server's message for API errors
func errorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	return "Connection error"
}
