package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// IdentityHeader carries the enrolled identifier on every authenticated
// request.
const IdentityHeader = "X-UUID"

const (
	enrollPath  = "/enroll"
	contactsURL = "/contacts"
	contactURL  = "/contacts/{id}"
)

type httpContactsAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPContactsAdapter constructs an HTTP/REST implementation of
// [ContactsAdapter]. It normalises the base URL from adapterCfg.HTTPAddress
// and bounds every request by adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPContactsAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ContactsAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpContactsAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Enroll implements [ContactsAdapter]: GET /enroll answers with the bare
// identifier as text.
func (h *httpContactsAdapter) Enroll(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(enrollPath)
	if err != nil {
		return "", fmt.Errorf("enroll request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	identifier := strings.TrimSpace(string(resp.Body()))
	if identifier == "" {
		return "", ErrEmptyIdentifier
	}

	h.logger.Debug().Str("func", "httpContactsAdapter.Enroll").Msg("enrolled")
	return identifier, nil
}

// ListContacts implements [ContactsAdapter]: GET /contacts.
func (h *httpContactsAdapter) ListContacts(ctx context.Context, identity string) ([]models.ContactDTO, error) {
	req, err := h.request(ctx, identity)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(contactsURL)
	if err != nil {
		return nil, fmt.Errorf("list contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	contacts := make([]models.ContactDTO, 0)
	if err = json.Unmarshal(resp.Body(), &contacts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return contacts, nil
}

// GetContact implements [ContactsAdapter]: GET /contacts/{id}.
func (h *httpContactsAdapter) GetContact(ctx context.Context, identity string, id int64) (models.ContactDTO, error) {
	req, err := h.request(ctx, identity)
	if err != nil {
		return models.ContactDTO{}, err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(contactURL)
	if err != nil {
		return models.ContactDTO{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactDTO{}, err
	}

	return decodeContact(resp)
}

// CreateContact implements [ContactsAdapter]: POST /contacts.
func (h *httpContactsAdapter) CreateContact(ctx context.Context, identity string, dto models.ContactDTO) (models.ContactDTO, error) {
	req, err := h.request(ctx, identity)
	if err != nil {
		return models.ContactDTO{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(dto).
		Post(contactsURL)
	if err != nil {
		return models.ContactDTO{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactDTO{}, err
	}

	return decodeContact(resp)
}

// UpdateContact implements [ContactsAdapter]: PUT /contacts/{id}. The id in
// the path wins over dto.ID.
func (h *httpContactsAdapter) UpdateContact(ctx context.Context, identity string, id int64, dto models.ContactDTO) (models.ContactDTO, error) {
	req, err := h.request(ctx, identity)
	if err != nil {
		return models.ContactDTO{}, err
	}

	dto.ID = &id
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(dto).
		Put(contactURL)
	if err != nil {
		return models.ContactDTO{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactDTO{}, err
	}

	return decodeContact(resp)
}

// DeleteContact implements [ContactsAdapter]: DELETE /contacts/{id}. Any
// 2xx status is success; the body is ignored.
func (h *httpContactsAdapter) DeleteContact(ctx context.Context, identity string, id int64) error {
	req, err := h.request(ctx, identity)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(contactURL)
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}

	return mapHTTPError(resp)
}

// request starts an authenticated request.
func (h *httpContactsAdapter) request(ctx context.Context, identity string) (*resty.Request, error) {
	if identity == "" {
		return nil, ErrMissingIdentity
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(IdentityHeader, identity), nil
}

// decodeContact reads a single contact that must carry its server id.
func decodeContact(resp *resty.Response) (models.ContactDTO, error) {
	var dto models.ContactDTO
	if err := json.Unmarshal(resp.Body(), &dto); err != nil {
		return models.ContactDTO{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if dto.ID == nil {
		return models.ContactDTO{}, fmt.Errorf("%w: contact without id", ErrMalformedResponse)
	}

	return dto, nil
}
