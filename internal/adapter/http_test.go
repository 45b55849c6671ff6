// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const testIdentity = "9b2f6c4e-1d3a-4c55-8e21-7f0a9d3b6c11"

// newTestAdapter creates an httpContactsAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpContactsAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPContactsAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpContactsAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func ptr[T any](v T) *T { return &v }

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: "https://contacts.example.com/", want: "https://contacts.example.com"},
		{name: "whitespace", raw: "  http://10.0.0.1:9000  ", want: "http://10.0.0.1:9000"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPContactsAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPContactsAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Enroll ──────────────────────────────────────────────────────────────────

func TestEnroll_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/enroll", r.URL.Path)
		assert.Empty(t, r.Header.Get(IdentityHeader))

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(testIdentity + "\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Enroll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testIdentity, got)
}

func TestEnroll_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Enroll(context.Background())

	assert.ErrorIs(t, err, ErrEmptyIdentifier)
}

func TestEnroll_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Enroll(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestEnroll_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Enroll(context.Background())

	assert.Error(t, err)
}

func TestEnroll_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	a, err := NewHTTPContactsAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Enroll(context.Background())
	assert.Error(t, err)
}

// ── ListContacts ────────────────────────────────────────────────────────────

func TestListContacts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/contacts", r.URL.Path)
		assert.Equal(t, testIdentity, r.Header.Get(IdentityHeader))

		writeJSON(t, w, http.StatusOK, []models.ContactDTO{
			{ID: ptr(int64(1)), Name: "Doe", FirstName: ptr("John")},
			{ID: ptr(int64(2)), Name: "Roe", Type: ptr("MOBILE")},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListContacts(context.Background(), testIdentity)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), *got[0].ID)
	assert.Equal(t, "John", *got[0].FirstName)
	assert.Equal(t, "MOBILE", *got[1].Type)
}

func TestListContacts_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.ContactDTO{})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListContacts(context.Background(), testIdentity)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListContacts_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListContacts(context.Background(), testIdentity)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestListContacts_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListContacts(context.Background(), testIdentity)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticatedCalls_MissingIdentity(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.ListContacts(ctx, "")
	assert.ErrorIs(t, err, ErrMissingIdentity)
	_, err = a.GetContact(ctx, "", 1)
	assert.ErrorIs(t, err, ErrMissingIdentity)
	_, err = a.CreateContact(ctx, "", models.ContactDTO{Name: "Doe"})
	assert.ErrorIs(t, err, ErrMissingIdentity)
	_, err = a.UpdateContact(ctx, "", 1, models.ContactDTO{Name: "Doe"})
	assert.ErrorIs(t, err, ErrMissingIdentity)
	assert.ErrorIs(t, a.DeleteContact(ctx, "", 1), ErrMissingIdentity)

	assert.False(t, called)
}

// ── GetContact ──────────────────────────────────────────────────────────────

func TestGetContact_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/contacts/42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ContactDTO{ID: ptr(int64(42)), Name: "Doe"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetContact(context.Background(), testIdentity, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), *got.ID)
}

func TestGetContact_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "contact not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetContact(context.Background(), testIdentity, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── CreateContact ───────────────────────────────────────────────────────────

func TestCreateContact_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contacts", r.URL.Path)
		assert.Equal(t, testIdentity, r.Header.Get(IdentityHeader))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "Doe", raw["name"])
		assert.Contains(t, raw, "id")
		assert.Nil(t, raw["id"])

		writeJSON(t, w, http.StatusCreated, models.ContactDTO{ID: ptr(int64(7)), Name: "Doe"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateContact(context.Background(), testIdentity, models.ContactDTO{Name: "Doe"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), *got.ID)
}

func TestCreateContact_ResponseWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, models.ContactDTO{Name: "Doe"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateContact(context.Background(), testIdentity, models.ContactDTO{Name: "Doe"})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCreateContact_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "name is required", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateContact(context.Background(), testIdentity, models.ContactDTO{})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "name is required")
}

// ── UpdateContact ───────────────────────────────────────────────────────────

func TestUpdateContact_PathIDWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/contacts/5", r.URL.Path)

		var dto models.ContactDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		require.NotNil(t, dto.ID)
		assert.Equal(t, int64(5), *dto.ID)

		writeJSON(t, w, http.StatusOK, dto)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UpdateContact(context.Background(), testIdentity, 5,
		models.ContactDTO{ID: ptr(int64(99)), Name: "Doe"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), *got.ID)
}

func TestUpdateContact_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateContact(context.Background(), testIdentity, 5, models.ContactDTO{Name: "Doe"})

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

// ── DeleteContact ───────────────────────────────────────────────────────────

func TestDeleteContact_Success(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/contacts/3", r.URL.Path)
			w.WriteHeader(status)
		}))

		err := newTestAdapter(t, srv.URL).DeleteContact(context.Background(), testIdentity, 3)
		srv.Close()

		assert.NoError(t, err, "status %d", status)
	}
}

func TestDeleteContact_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteContact(context.Background(), testIdentity, 3)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteContact(context.Background(), testIdentity, 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
