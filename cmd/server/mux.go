package main

import (
	"encoding/json"
	"net/http"

	"github.com/samber/lo"
)

type Handler struct {
	processor ImportProcessor
}

func NewHandler(
	processor ImportProcessor,
) *Handler {
	return &Handler{
		processor: processor,
	}
}

func (h *Handler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	if apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	summary, err := h.processor.Run(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	response := ImportResponse{
		Fetched:    summary.Fetched,
		Imported:   len(summary.Imported),
		Duplicates: summary.Duplicates,
		Skipped:    summary.Skipped,
		Unmatched:  summary.Unmatched,
		Errors: lo.Map(summary.Errors, func(err error, _ int) string {
			return err.Error()
		}),
	}

	w.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(w).Encode(response); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
