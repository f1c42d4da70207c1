package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kobo/internal/core"
	"kobo/internal/export"
	"kobo/internal/log"
)

// handleIndex renders the dashboard: summary cards, filter bar, entry
// form and the transaction list.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	mode := core.ParseFilterMode(r.URL.Query().Get("filter"))
	s.renderIndex(w, r, mode, http.StatusOK, indexForm{Date: today(), Type: string(core.Credit)}, "")
}

// handleAddTransaction validates the submitted entry and records it.
// Validation failures block the submission and re-render the form inline;
// no partial transaction is ever created.
func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", log.FieldError, err, log.FieldPath, r.URL.Path)
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	mode := core.ParseFilterMode(r.Form.Get("filter"))
	form := indexForm{
		Description: sanitizeInput(r.Form.Get("description")),
		Amount:      strings.TrimSpace(r.Form.Get("amount")),
		Type:        strings.TrimSpace(r.Form.Get("type")),
		Date:        strings.TrimSpace(r.Form.Get("date")),
	}
	if form.Date == "" {
		form.Date = today()
	}

	if form.Description == "" || form.Amount == "" {
		s.renderIndex(w, r, mode, http.StatusUnprocessableEntity, form, "Please fill in all fields")
		return
	}

	amount, err := core.ParseAmount(form.Amount)
	if err != nil {
		s.renderIndex(w, r, mode, http.StatusUnprocessableEntity, form, validationMessage(err))
		return
	}

	draft := core.Draft{
		Description: form.Description,
		Amount:      amount,
		Type:        core.TransactionType(form.Type),
		Date:        form.Date,
	}
	if _, err := s.service.Add(r.Context(), draft); err != nil {
		s.renderIndex(w, r, mode, http.StatusUnprocessableEntity, form, validationMessage(err))
		return
	}

	http.Redirect(w, r, indexURL(mode), http.StatusSeeOther)
}

// handleConfirmDelete shows the are-you-sure page. Deletion itself only
// happens on the follow-up POST.
func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	mode := core.ParseFilterMode(r.URL.Query().Get("filter"))

	var target *core.Transaction
	for _, tx := range s.service.Snapshot(core.FilterAll) {
		if tx.ID == id {
			t := tx
			target = &t
			break
		}
	}
	if target == nil {
		http.Redirect(w, r, indexURL(mode), http.StatusSeeOther)
		return
	}

	data := struct {
		ID          string
		Description string
		Amount      string
		Filter      string
	}{
		ID:          target.ID,
		Description: target.Description,
		Amount:      core.FormatAmountDisplay(target.Amount, !s.amountsVisible()),
		Filter:      string(mode),
	}
	s.render(w, r, "confirm_delete.html", http.StatusOK, data)
}

// handleDeleteTransaction removes the transaction after confirmation. An
// unknown id is silently ignored, matching the ledger's remove contract.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	mode := core.ParseFilterMode(r.Form.Get("filter"))
	s.service.Remove(r.Context(), r.Form.Get("id"))
	http.Redirect(w, r, indexURL(mode), http.StatusSeeOther)
}

// handleToggleVisibility flips the shared show/hide-amounts flag.
func (s *Server) handleToggleVisibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	_ = r.ParseForm()
	s.mu.Lock()
	s.showAmounts = !s.showAmounts
	s.mu.Unlock()
	http.Redirect(w, r, indexURL(core.ParseFilterMode(r.Form.Get("filter"))), http.StatusSeeOther)
}

// handleExport serves the current (filtered) view as a CSV download and,
// when a delivery directory is configured, drops a copy there too.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	mode := core.ParseFilterMode(r.URL.Query().Get("filter"))
	transactions := s.service.Snapshot(mode)

	csv := export.BuildCSV(transactions)
	filename := export.Filename(time.Now())

	if s.delivery != nil {
		if err := s.delivery.Deliver(filename, export.MIMEType, []byte(csv)); err != nil {
			slog.WarnContext(r.Context(), "Export delivery failed",
				log.FieldOperation, log.OpExport, log.FieldFilename, filename, log.FieldError, err)
		}
	}

	w.Header().Set("Content-Type", export.MIMEType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))

	slog.InfoContext(r.Context(), "Exported transactions",
		log.FieldOperation, log.OpExport,
		log.FieldFilename, filename,
		log.FieldFilter, string(mode),
		log.FieldCount, len(transactions))
}

func indexURL(mode core.FilterMode) string {
	if mode == core.FilterAll {
		return "/"
	}
	return "/?filter=" + url.QueryEscape(string(mode))
}
