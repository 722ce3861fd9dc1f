package genquiz

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"docquiz-service/internal/config"
	"docquiz-service/internal/extract"
)

const (
	maxUploadBytes   = 10 << 20
	minDocumentChars = 100
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz accepts a PDF/DOCX upload or raw text and responds with the
// generated question array.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	text, ok := h.readDocumentText(w, r)
	if !ok {
		return
	}
	log.Infof("extracted %d characters from request", len(text))

	questions, err := h.service.GenerateQuestions(r.Context(), text, true)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// GenerateQuizMarkdown runs the same pipeline but responds with the
// plain-text markdown rendering and does not persist a record.
func (h *Handler) GenerateQuizMarkdown(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	text, ok := h.readDocumentText(w, r)
	if !ok {
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), text, false)
	if err != nil {
		writeGenerateError(w, err)
		return
	}
	log.Infof("generated %d questions for markdown export", len(questions))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(RenderMarkdown(questions, time.Now())))
}

// RateLimitStatus reports static provider limit information.
func (h *Handler) RateLimitStatus(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"model":          defaultModel,
		"limit":          "Free tier with Claude Haiku model",
		"message":        "Using Anthropic Claude 3.5 Haiku model for quiz generation.",
		"reset_info":     "Rate limit resets according to OpenRouter free tier policy.",
		"upgrade_tip":    "Consider upgrading to paid tier for unlimited requests",
		"current_status": "Ready to generate quizzes",
	})
}

// readDocumentText resolves the document text from either an uploaded file
// or a form text field, writing the client error itself when validation
// fails.
func (h *Handler) readDocumentText(w http.ResponseWriter, r *http.Request) (string, bool) {
	log := config.WithContext(r.Context())

	var text string

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			http.Error(w, "Unable to determine file type", http.StatusBadRequest)
			return "", false
		}
		log.Infof("processing file %s (%s)", header.Filename, contentType)

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
		if err != nil {
			http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
			return "", false
		}
		if len(data) > maxUploadBytes {
			http.Error(w, "File size exceeds 10MB limit", http.StatusBadRequest)
			return "", false
		}

		text, err = extract.FromUpload(data, contentType)
		if errors.Is(err, extract.ErrUnsupportedType) {
			http.Error(w, "Unsupported file type. Please upload PDF or DOCX files.", http.StatusBadRequest)
			return "", false
		}
		if err != nil {
			log.WithError(err).Error("text extraction failed")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return "", false
		}

	case r.FormValue("text") != "":
		text = strings.TrimSpace(r.FormValue("text"))

	default:
		http.Error(w, "Please provide either a file or text input", http.StatusBadRequest)
		return "", false
	}

	if text == "" {
		http.Error(w, "No text content found in the provided input", http.StatusBadRequest)
		return "", false
	}
	if len(text) < minDocumentChars {
		http.Error(w, "Document content is too short to generate meaningful questions", http.StatusBadRequest)
		return "", false
	}
	return text, true
}

func writeGenerateError(w http.ResponseWriter, err error) {
	var rateLimited *RateLimitError
	switch {
	case errors.Is(err, ErrTimeout):
		http.Error(w, "AI service request timed out", http.StatusGatewayTimeout)
	case errors.As(err, &rateLimited):
		http.Error(w, rateLimited.Detail(), http.StatusTooManyRequests)
	case errors.Is(err, ErrUnparseableResponse), errors.Is(err, ErrNoValidQuestions):
		http.Error(w, "Failed to parse AI response. The AI model may have generated malformed content. Please try again in a minute.", http.StatusInternalServerError)
	default:
		http.Error(w, "failed to generate questions", http.StatusInternalServerError)
	}
}
