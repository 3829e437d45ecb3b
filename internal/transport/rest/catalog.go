package rest

import (
	"net/http"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

type statusEntry struct {
	Value               domain.ApplicationStatus `json:"value"`
	Label               string                   `json:"label"`
	EditableByApplicant bool                     `json:"editableByApplicant"`
	Notifiable          bool                     `json:"notifiable"`
	Terminal            bool                     `json:"terminal"`
}

// Statuses handles GET /api/statuses with the status pipeline in order.
func Statuses(w http.ResponseWriter, r *http.Request) {
	out := make([]statusEntry, 0, len(domain.ApplicationStatuses))
	for _, s := range domain.ApplicationStatuses {
		out = append(out, statusEntry{
			Value:               s,
			Label:               s.Label(),
			EditableByApplicant: s.EditableByApplicant(),
			Notifiable:          s.IsNotifiable(),
			Terminal:            s.IsTerminal(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
