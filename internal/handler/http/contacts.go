// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.List(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listContacts", err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactIDFromPath(w, r)
	if !ok {
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "*Handler.getContact", err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	dto, ok := decodeContact(w, r)
	if !ok {
		return
	}

	created, err := h.services.ContactService.Create(r.Context(), dto)
	if err != nil {
		h.writeError(w, r, "*Handler.createContact", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactIDFromPath(w, r)
	if !ok {
		return
	}
	dto, ok := decodeContact(w, r)
	if !ok {
		return
	}

	updated, err := h.services.ContactService.Update(r.Context(), id, dto)
	if err != nil {
		h.writeError(w, r, "*Handler.updateContact", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "*Handler.deleteContact", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	http.Error(w, messageFromError(err, status), status)
}

func contactIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Warn().Str("id", chi.URLParam(r, "id")).Msg(ErrInvalidContactID.Error())
		http.Error(w, ErrInvalidContactID.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeContact(w http.ResponseWriter, r *http.Request) (models.ContactDTO, bool) {
	var dto models.ContactDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return models.ContactDTO{}, false
	}
	return dto, true
}
