// Package handler — convert.go implements POST /convert.
// The form fields of the travel-package conversion page map onto a
// domain.ConversionRequest; the response is either a Shift_JIS CSV download
// or an HTML error fragment listing every validation failure.
package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pkordes/travelops/backend/internal/domain"
	"github.com/pkordes/travelops/backend/internal/sjiscsv"
)

// downloadName is the fixed attachment filename of a successful conversion.
const downloadName = "converted.csv"

// errorFragment renders the collected conversion errors, one per line, as a
// fragment the form page injects into its error area.
var errorFragment = template.Must(template.New("errors").Parse(
	`<div class="convert-errors">
{{- range . }}
<p>{{ . }}</p>
{{- end }}
</div>
`))

// Convert handles POST /convert.
// All-or-nothing: any error in the request yields HTTP 422 with every
// collected message and no CSV, even for the parts that expanded cleanly.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderErrors(w, domain.ErrorList{"malformed form data"})
		return
	}

	req := domain.ConversionRequest{
		Facilities:   r.PostFormValue("facility"),
		RateLines:    r.PostFormValue("departure_rate"),
		SaleFrom:     r.PostFormValue("sale_from"),
		SaleTo:       r.PostFormValue("sale_to"),
		Airport:      r.PostFormValue("airport"),
		Participants: r.PostFormValue("participants"),
	}

	rows, errs := s.convert.Convert(r.Context(), req)
	if len(errs) > 0 {
		renderErrors(w, errs)
		return
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = row.Record()
	}

	data, err := sjiscsv.Encode(records)
	if err != nil {
		slog.ErrorContext(r.Context(), "csv encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=Shift_JIS")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data) //nolint:errcheck — nothing useful to do if the client is gone
}

// renderErrors writes the error fragment with HTTP 422.
func renderErrors(w http.ResponseWriter, errs domain.ErrorList) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	//nolint:errcheck — template over a ResponseWriter; nothing to recover
	errorFragment.Execute(w, errs)
}
