package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/errors"
	"github.com/FocuswithJustin/Versicle/core/locale"
	"github.com/FocuswithJustin/Versicle/core/ref"
	"github.com/FocuswithJustin/Versicle/core/reftext"
)

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthInfo describes the server state.
type HealthInfo struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Languages   int    `json:"languages"`
	Books       int    `json:"books"`
	Verses      int    `json:"verses"`
	Fingerprint string `json:"canon_fingerprint"`
}

// LanguageInfo describes a registered language.
type LanguageInfo struct {
	Code             string   `json:"code"`
	ChapterVerseSeps []string `json:"chapter_verse_separators"`
	RangeSeps        []string `json:"range_separators"`
	SpaceAfterBook   bool     `json:"space_after_book"`
}

// BookInfo describes one canonical book in a given language.
type BookInfo struct {
	Ordinal   int    `json:"ordinal"`
	OSIS      string `json:"osis"`
	Name      string `json:"name"`
	Short     string `json:"short"`
	Testament string `json:"testament"`
	Chapters  int    `json:"chapters"`
	Verses    int    `json:"verses"`
}

// ParseRequest is the body of POST /parse and POST /validate.
type ParseRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// ReferenceInfo describes a parsed reference.
type ReferenceInfo struct {
	Range       ref.Range `json:"range"`
	OSIS        string    `json:"osis"`
	Granularity string    `json:"granularity"`
	Count       int       `json:"count"`
	Text        string    `json:"text"`
}

// FormatRequest is the body of POST /format.
type FormatRequest struct {
	Range    ref.Range `json:"range"`
	Language string    `json:"language,omitempty"`
	Short    bool      `json:"short,omitempty"`
}

// FormatResult carries a rendered reference.
type FormatResult struct {
	Text string `json:"text"`
	OSIS string `json:"osis"`
}

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text  string `json:"text"`
	From  string `json:"from"`
	To    string `json:"to"`
	Short bool   `json:"short,omitempty"`
}

// ValidateResult reports whether a reference parsed cleanly.
type ValidateResult struct {
	Valid   bool   `json:"valid"`
	OSIS    string `json:"osis,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// ExpandRequest is the body of POST /expand. Either Text or Range
// identifies the reference to enumerate.
type ExpandRequest struct {
	Text     string    `json:"text,omitempty"`
	Range    ref.Range `json:"range,omitempty"`
	Language string    `json:"language,omitempty"`
	Verses   bool      `json:"verses,omitempty"`
	Limit    int       `json:"limit,omitempty"`
	Cursor   string    `json:"cursor,omitempty"`
}

// ExpandPage is one page of an expansion.
type ExpandPage struct {
	OSIS        string      `json:"osis"`
	Granularity string      `json:"granularity"`
	Total       int         `json:"total"`
	Points      []ref.Point `json:"points"`
	NextCursor  string      `json:"next_cursor,omitempty"`
}

const (
	defaultExpandLimit = 100
	maxExpandLimit     = 1000
)

func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"name":    "Versicle API",
		"version": apiVersion,
		"endpoints": []string{
			"GET /health",
			"GET /languages",
			"GET /books",
			"POST /parse",
			"POST /format",
			"POST /translate",
			"POST /validate",
			"POST /expand",
			"GET /jobs",
			"POST /jobs",
			"GET /jobs/:id",
			"DELETE /jobs/:id",
			"WS /ws",
		},
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	respond(w, http.StatusOK, HealthInfo{
		Status:      "healthy",
		Version:     apiVersion,
		Uptime:      time.Since(startTime).String(),
		Languages:   len(locale.Codes()),
		Books:       canon.BookCount,
		Verses:      canon.TotalVerses(),
		Fingerprint: canon.Fingerprint(),
	})
}

func handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	codes := locale.Codes()
	infos := make([]LanguageInfo, 0, len(codes))
	for _, code := range codes {
		lang, err := locale.Lookup(code)
		if err != nil {
			continue
		}
		infos = append(infos, LanguageInfo{
			Code:             lang.Code,
			ChapterVerseSeps: lang.ChapterVerseSeps,
			RangeSeps:        lang.RangeSeps,
			SpaceAfterBook:   lang.SpaceAfterBook,
		})
	}

	respondList(w, http.StatusOK, infos, len(infos))
}

func handleBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	code := r.URL.Query().Get("lang")
	if code == "" {
		code = "en"
	}
	lang, err := locale.Lookup(code)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	infos := make([]BookInfo, 0, canon.BookCount)
	for _, b := range canon.Books() {
		long, err := lang.DisplayName(b, locale.FormLong)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		short, err := lang.DisplayName(b, locale.FormShort)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		chapters, _ := canon.ChapterCount(b)
		verses := 0
		for c := 1; c <= chapters; c++ {
			n, _ := canon.VerseCount(b, c)
			verses += n
		}
		infos = append(infos, BookInfo{
			Ordinal:   b.Ordinal(),
			OSIS:      b.OSIS(),
			Name:      long,
			Short:     short,
			Testament: b.Testament().String(),
			Chapters:  chapters,
			Verses:    verses,
		})
	}

	respondList(w, http.StatusOK, infos, len(infos))
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req ParseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMS", "text is required")
		return
	}

	code := req.Language
	if code == "" {
		code = "en"
	}

	rng, err := reftext.Parse(req.Text, code)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, referenceInfo(rng, code))
}

func handleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req FormatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Range.IsZero() {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMS", "range is required")
		return
	}

	code := req.Language
	if code == "" {
		code = "en"
	}

	text, err := renderRange(req.Range, code, req.Short)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, FormatResult{Text: text, OSIS: req.Range.String()})
}

func handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req TranslateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Text == "" || req.From == "" || req.To == "" {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMS", "text, from, and to are required")
		return
	}

	rng, err := reftext.Parse(req.Text, req.From)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	text, err := renderRange(rng, req.To, req.Short)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, FormatResult{Text: text, OSIS: rng.String()})
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req ParseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMS", "text is required")
		return
	}

	code := req.Language
	if code == "" {
		code = "en"
	}

	rng, err := reftext.Parse(req.Text, code)
	if err != nil {
		// A bad language code faults the request, not the reference.
		if errors.Is(err, errors.ErrUnsupportedLanguage) {
			respondDomainError(w, err)
			return
		}
		_, errCode := domainErrorCode(err)
		respond(w, http.StatusOK, ValidateResult{Valid: false, Code: errCode, Message: err.Error()})
		return
	}

	respond(w, http.StatusOK, ValidateResult{Valid: true, OSIS: rng.String()})
}

func handleExpand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req ExpandRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rng := req.Range
	if req.Text != "" {
		code := req.Language
		if code == "" {
			code = "en"
		}
		var err error
		rng, err = reftext.Parse(req.Text, code)
		if err != nil {
			respondDomainError(w, err)
			return
		}
	}
	if rng.IsZero() {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMS", "text or range is required")
		return
	}
	if req.Verses {
		rng = rng.VerseRange()
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultExpandLimit
	}
	limit = min(limit, maxExpandLimit)

	offset := 0
	if req.Cursor != "" {
		n, err := strconv.Atoi(req.Cursor)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "INVALID_CURSOR", "cursor is not a valid offset")
			return
		}
		offset = n
	}

	total := rng.Count()
	points := collectPoints(rng, offset, limit)

	page := ExpandPage{
		OSIS:        rng.String(),
		Granularity: rng.Granularity().String(),
		Total:       total,
		Points:      points,
	}
	if next := offset + len(points); next < total {
		page.NextCursor = strconv.Itoa(next)
	}

	respondList(w, http.StatusOK, page, total)
}

// handleJobs handles GET /jobs - list jobs, and POST /jobs - create an expansion job.
func handleJobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		jobs := globalJobStore.List()
		respondList(w, http.StatusOK, jobs, len(jobs))
	case http.MethodPost:
		createJobHandler(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET and POST are allowed")
	}
}

func createJobHandler(w http.ResponseWriter, r *http.Request) {
	var req ExpandJobRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "MISSING_PARAMS", "text is required")
		return
	}

	job := globalJobStore.Create(req)
	runExpandJob(job)

	respond(w, http.StatusCreated, job)
}

// handleJobByID handles GET /jobs/{id} - job status, and DELETE /jobs/{id} - cancel.
func handleJobByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" {
		respondError(w, http.StatusBadRequest, "MISSING_ID", "Job ID is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		job, exists := globalJobStore.Get(id)
		if !exists {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Job not found")
			return
		}
		respond(w, http.StatusOK, job)
	case http.MethodDelete:
		if err := globalJobStore.Cancel(id); err != nil {
			if strings.Contains(err.Error(), "not found") {
				respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
				return
			}
			respondError(w, http.StatusBadRequest, "CANCEL_FAILED", err.Error())
			return
		}
		respond(w, http.StatusOK, map[string]string{"message": "Job cancelled"})
	default:
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET and DELETE are allowed")
	}
}

// referenceInfo builds the parse response for a range, rendering it back
// in the language it was parsed from.
func referenceInfo(rng ref.Range, code string) ReferenceInfo {
	text, err := reftext.Format(rng, code)
	if err != nil {
		text = rng.String()
	}
	return ReferenceInfo{
		Range:       rng,
		OSIS:        rng.String(),
		Granularity: rng.Granularity().String(),
		Count:       rng.Count(),
		Text:        text,
	}
}

func renderRange(rng ref.Range, code string, short bool) (string, error) {
	if short {
		return reftext.FormatShort(rng, code)
	}
	return reftext.Format(rng, code)
}

// collectPoints gathers one page of points from the enumeration.
func collectPoints(r ref.Range, offset, limit int) []ref.Point {
	points := make([]ref.Point, 0, limit)
	i := 0
	for p := range r.Points() {
		if i >= offset+limit {
			break
		}
		if i >= offset {
			points = append(points, p)
		}
		i++
	}
	return points
}

// domainErrorCode maps an error from the core packages to an HTTP status
// and a stable error code.
func domainErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, errors.ErrUnsupportedLanguage):
		return http.StatusBadRequest, "UNSUPPORTED_LANGUAGE"
	case errors.Is(err, errors.ErrUnrecognizedBookName):
		return http.StatusBadRequest, "UNRECOGNIZED_BOOK_NAME"
	case errors.Is(err, errors.ErrUnknownBook):
		return http.StatusBadRequest, "UNKNOWN_BOOK"
	case errors.Is(err, errors.ErrInvalidChapter):
		return http.StatusBadRequest, "INVALID_CHAPTER"
	case errors.Is(err, errors.ErrChapterOutOfRange):
		return http.StatusBadRequest, "CHAPTER_OUT_OF_RANGE"
	case errors.Is(err, errors.ErrInvalidVerse):
		return http.StatusBadRequest, "INVALID_VERSE"
	case errors.Is(err, errors.ErrGranularityMismatch):
		return http.StatusBadRequest, "GRANULARITY_MISMATCH"
	case errors.Is(err, errors.ErrRangeOrder):
		return http.StatusBadRequest, "RANGE_ORDER"
	case errors.Is(err, errors.ErrMalformedInput):
		return http.StatusBadRequest, "MALFORMED_INPUT"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func respondDomainError(w http.ResponseWriter, err error) {
	status, code := domainErrorCode(err)
	respondError(w, status, code, err.Error())
}

// decodeBody decodes a JSON request body, writing an error response on
// failure. Validation errors raised while unmarshalling reference fields
// surface with their domain code rather than a generic JSON error.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if status, code := domainErrorCode(err); code != "INTERNAL" {
			respondError(w, status, code, err.Error())
		} else {
			respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		}
		return false
	}
	return true
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondList(w http.ResponseWriter, status int, data interface{}, total int) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Total:     total,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
