// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSyncState is returned when a stored or decoded value does not name
// one of the known [SyncState] values.
var ErrInvalidSyncState = errors.New("invalid sync state")

// SyncState tags every local contact with its position relative to the last
// known server copy.
type SyncState string

const (
	// Synced means the local copy matches the last known server copy.
	Synced SyncState = "SYNCED"

	// ToSync means the local copy was created or modified and has not been
	// pushed successfully yet.
	ToSync SyncState = "TO_SYNC"

	// ToDelete marks a soft-deleted contact. It is hidden from every active
	// view but keeps its row until the server copy is confirmed gone.
	ToDelete SyncState = "TO_DELETE"
)

// String implements fmt.Stringer.
func (s SyncState) String() string {
	return string(s)
}

// Valid reports whether s is one of the three known states.
func (s SyncState) Valid() bool {
	switch s {
	case Synced, ToSync, ToDelete:
		return true
	}
	return false
}

// OnLocalEdit returns the state after a local edit. Editing a soft-deleted
// contact is a no-op and keeps ToDelete.
func (s SyncState) OnLocalEdit() SyncState {
	switch s {
	case Synced, ToSync:
		return ToSync
	default:
		return s
	}
}

// OnPushSucceeded returns the state after the server accepted a create or
// update. Only ToSync moves; other states have nothing pushed.
func (s SyncState) OnPushSucceeded() SyncState {
	if s == ToSync {
		return Synced
	}
	return s
}

// Value implements driver.Valuer.
func (s SyncState) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSyncState, string(s))
	}
	return string(s), nil
}

// Scan implements sql.Scanner.
func (s *SyncState) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidSyncState, src)
	}

	state := SyncState(raw)
	if !state.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSyncState, raw)
	}
	*s = state
	return nil
}

// UnmarshalJSON rejects unknown states.
func (s *SyncState) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	state := SyncState(raw)
	if !state.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSyncState, raw)
	}
	*s = state
	return nil
}
