package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// enroll issues a new identifier and answers with it as plain text.
func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, err := h.services.EnrollService.Enroll(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.enroll").Msg("enrollment failed")
		http.Error(w, messageFromError(err, status), status)
		return
	}

	utils.WriteText(w, ownerID, http.StatusOK)
}
