package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sintomi/internal/core"
	"sintomi/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", log.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Today    string
		Symptoms []string
	}{
		Today:    time.Now().Format("2006-01-02"),
		Symptoms: core.Symptoms,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", log.FieldError, err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleRecordSymptoms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", log.FieldError, err, log.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Formato richiesta non valido</div>`))
		return
	}

	dateStr := strings.TrimSpace(r.Form.Get("date"))
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}
	date, err := core.ParseDate(dateStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Data non valida</div>`))
		return
	}

	flags := make(map[string]bool, len(core.Symptoms))
	checked := r.Form["symptom"]
	for _, name := range core.Symptoms {
		for _, v := range checked {
			if v == name {
				flags[name] = true
				break
			}
		}
	}

	rec := core.NewRecord(date, flags)
	if _, err := s.tracker.Record(r.Context(), rec); err != nil {
		slog.ErrorContext(r.Context(), "Record symptoms error", log.FieldError, err, log.FieldDate, date.Key())
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Dati non validi: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	// Invalidate the cached summary and trigger a client refresh
	s.summaryCache.Delete(summaryCacheKey)
	w.Header().Set("HX-Trigger", `{"symptoms:recorded": {"date": "`+date.Key()+`"}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Sintomi registrati per ` + template.HTMLEscapeString(date.Key()) + `</div>`))
}

const summaryCacheKey = "month-summary"

// handleMonthSummary renders the monthly summary partial: the prevalence
// table plus one trend chart per symptom.
func (s *Server) handleMonthSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	view := s.getSummary(r)

	if s.templates == nil {
		_, _ = w.Write([]byte(`<section id="month-summary" class="month-summary"><div class="placeholder">Nessun modello caricato</div></section>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "month_summary.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", log.FieldError, err, "template", "month_summary.html")
		_, _ = w.Write([]byte(`<section id="month-summary" class="month-summary"><div class="placeholder">Errore rendering panoramica</div></section>`))
		return
	}
}

// getSummary returns the cached summary view, rebuilding it at most once
// at a time across concurrent requests.
func (s *Server) getSummary(r *http.Request) summaryView {
	if view, ok := s.summaryCache.Get(summaryCacheKey); ok {
		slog.DebugContext(r.Context(), "Summary cache hit")
		return view
	}

	v, _, _ := s.summaryGroup.Do(summaryCacheKey, func() (any, error) {
		rows := s.tracker.Summary(r.Context())
		view := buildSummaryView(rows)
		s.summaryCache.Set(summaryCacheKey, view)
		slog.DebugContext(r.Context(), "Summary cached", "months", len(rows))
		return view, nil
	})
	return v.(summaryView)
}
