package http

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kobo/internal/core"
	"kobo/internal/log"
)

// indexForm holds the entry form's raw values so a rejected submission
// re-renders with the user's input intact.
type indexForm struct {
	Description string
	Amount      string
	Type        string
	Date        string
}

type summaryView struct {
	Inflow          string
	Outflow         string
	Balance         string
	BalanceNegative bool
}

type rowView struct {
	ID          string
	Description string
	Amount      string
	// template.HTML so the template emits the code-controlled "+"/"-"
	// literally instead of the escaped "&#43;".
	Sign     template.HTML
	Type     string
	Date     string
	IsCredit bool
}

type indexData struct {
	Summary        summaryView
	Rows           []rowView
	Filter         string
	ShowAmounts    bool
	Today          string
	Form           indexForm
	ErrorMsg       string
	PersistWarning bool
}

// renderIndex assembles the dashboard view model and renders it. The
// masked flag comes from the server's single visibility toggle, so cards
// and rows always agree.
func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, mode core.FilterMode, status int, form indexForm, errorMsg string) {
	visible := s.amountsVisible()
	masked := !visible

	sum := s.service.Summary()
	data := indexData{
		Summary: summaryView{
			Inflow:          core.FormatAmountDisplay(sum.TotalInflow, masked),
			Outflow:         core.FormatAmountDisplay(sum.TotalOutflow, masked),
			Balance:         core.FormatAmountDisplay(sum.NetBalance, masked),
			BalanceNegative: sum.NetBalance.Kobo < 0,
		},
		Filter:         string(mode),
		ShowAmounts:    visible,
		Today:          today(),
		Form:           form,
		ErrorMsg:       errorMsg,
		PersistWarning: s.service.PersistError() != nil,
	}

	for _, tx := range s.service.Snapshot(mode) {
		sign := template.HTML("-")
		if tx.Type == core.Credit {
			sign = "+"
		}
		if masked {
			sign = ""
		}
		data.Rows = append(data.Rows, rowView{
			ID:          tx.ID,
			Description: tx.Description,
			Amount:      core.FormatAmountDisplay(tx.Amount, masked),
			Sign:        sign,
			Type:        string(tx.Type),
			Date:        displayDate(tx.Date),
			IsCredit:    tx.Type == core.Credit,
		})
	}

	s.render(w, r, "index.html", status, data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "template", name)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "template", name, log.FieldError, err)
	}
}

// validationMessage maps entry validation errors to the inline messages
// shown above the form.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyDescription), errors.Is(err, core.ErrEmptyAmount):
		return "Please fill in all fields"
	case errors.Is(err, core.ErrInvalidAmount):
		return "Amount is not a valid number"
	case errors.Is(err, core.ErrInvalidDate):
		return "Date must be a valid calendar date"
	case errors.Is(err, core.ErrInvalidType):
		return "Transaction type must be credit or debit"
	default:
		return "Could not record transaction"
	}
}

// displayDate renders a stored ISO date for the list rows. Unparseable
// dates (possible in hand-edited blobs) fall back to the raw string.
func displayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
