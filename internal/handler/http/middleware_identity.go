package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// identityHeader carries the identifier issued by /enroll.
const identityHeader = "X-UUID"

// withIdentity resolves the X-UUID header into the owner of the request.
//
// A missing header is answered with 401 Unauthorized, an identifier the
// server never issued with 404 Not Found. On success the identifier is stored
// in the request context (see [utils.WithOwner]) and attached to the request
// logger as "owner".
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ownerID := r.Header.Get(identityHeader)
		if ownerID == "" {
			log.Warn().Err(ErrEmptyIdentityHeader).Send()
			http.Error(w, ErrEmptyIdentityHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		exists, err := h.services.EnrollService.Exists(ctx, ownerID)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withIdentity").Msg("error checking identity")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !exists {
			log.Warn().Err(ErrUnknownIdentity).Str("owner", ownerID).Send()
			http.Error(w, ErrUnknownIdentity.Error(), http.StatusNotFound)
			return
		}

		l := log.With().Str("owner", ownerID).Logger()
		ctx = utils.WithOwner(l.WithContext(ctx), ownerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
