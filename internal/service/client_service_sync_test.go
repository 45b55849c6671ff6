// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func TestContactSyncService_SyncAll_NotEnrolled_NoSideEffects(t *testing.T) {
	svc, _, identity, _ := newTestSyncSvc(t)
	ctx := context.Background()

	identity.EXPECT().Get(ctx).Return("", store.ErrIdentityNotFound)
	// no store reads, no network calls

	report, err := svc.SyncAll(ctx)

	assert.ErrorIs(t, err, ErrNoIdentity)
	assert.Equal(t, models.SyncReport{}, report)
}

func TestContactSyncService_SyncAll_IdentityReadFails(t *testing.T) {
	svc, _, identity, _ := newTestSyncSvc(t)
	ctx := context.Background()

	identity.EXPECT().Get(ctx).Return("", errDisk)

	_, err := svc.SyncAll(ctx)

	require.ErrorIs(t, err, errDisk)
	assert.NotErrorIs(t, err, ErrNoIdentity)
}

func TestContactSyncService_SyncAll_NothingPending(t *testing.T) {
	svc, local, identity, _ := newTestSyncSvc(t)
	ctx := context.Background()

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return(nil, nil)
	local.EXPECT().GetToSync(ctx).Return(nil, nil)

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Zero(t, report.Succeeded)
}

func TestContactSyncService_SyncAll_DeletionsBeforePushes(t *testing.T) {
	svc, local, identity, remote := newTestSyncSvc(t)
	ctx := context.Background()

	withRemote := models.Contact{LocalID: 1, RemoteID: ptr(int64(10)), Name: "Gone", SyncState: models.ToDelete}
	neverPushed := models.Contact{LocalID: 2, Name: "Draft", SyncState: models.ToDelete}
	fresh := models.Contact{LocalID: 3, Name: "New", SyncState: models.ToSync}
	edited := models.Contact{LocalID: 4, RemoteID: ptr(int64(40)), Name: "Edited", SyncState: models.ToSync}

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	gomock.InOrder(
		local.EXPECT().GetToDelete(ctx).Return([]models.Contact{withRemote, neverPushed}, nil),
		remote.EXPECT().DeleteContact(ctx, testIdentity, int64(10)).Return(nil),
		local.EXPECT().HardDelete(ctx, int64(1)).Return(nil),
		local.EXPECT().HardDelete(ctx, int64(2)).Return(nil),

		local.EXPECT().GetToSync(ctx).Return([]models.Contact{fresh, edited}, nil),
		remote.EXPECT().CreateContact(ctx, testIdentity, models.ContactToDTO(fresh)).
			Return(models.ContactDTO{ID: ptr(int64(30)), Name: "New"}, nil),
		local.EXPECT().MarkSynced(ctx, fresh, int64(30)).Return(true, nil),
		remote.EXPECT().UpdateContact(ctx, testIdentity, int64(40), models.ContactToDTO(edited)).
			Return(models.ContactToDTO(edited), nil),
		local.EXPECT().MarkSynced(ctx, edited, int64(40)).Return(true, nil),
	)

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Deleted: 2, Pushed: 2, Succeeded: 4, Failed: 0}, report)
	assert.True(t, report.OK())
}

func TestContactSyncService_SyncAll_PartialFailure(t *testing.T) {
	svc, local, identity, remote := newTestSyncSvc(t)
	ctx := context.Background()

	ok := models.Contact{LocalID: 1, Name: "Ok", SyncState: models.ToSync}
	failing := models.Contact{LocalID: 2, Name: "Failing", SyncState: models.ToSync}

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return(nil, nil)
	local.EXPECT().GetToSync(ctx).Return([]models.Contact{ok, failing}, nil)
	remote.EXPECT().CreateContact(ctx, testIdentity, models.ContactToDTO(ok)).Return(models.ContactDTO{ID: ptr(int64(11)), Name: "Ok"}, nil)
	local.EXPECT().MarkSynced(ctx, ok, int64(11)).Return(true, nil)
	remote.EXPECT().CreateContact(ctx, testIdentity, models.ContactToDTO(failing)).Return(models.ContactDTO{}, adapter.ErrBadRequest)
	// the failing record is not written back and stays TO_SYNC

	report, err := svc.SyncAll(ctx)

	require.ErrorIs(t, err, ErrSyncIncomplete)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.OK())
}

func TestContactSyncService_SyncAll_FailedDeleteDoesNotStopPass(t *testing.T) {
	svc, local, identity, remote := newTestSyncSvc(t)
	ctx := context.Background()

	tombstone := models.Contact{LocalID: 1, RemoteID: ptr(int64(10)), Name: "Gone", SyncState: models.ToDelete}
	dirty := models.Contact{LocalID: 2, RemoteID: ptr(int64(20)), Name: "Edited", SyncState: models.ToSync}

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return([]models.Contact{tombstone}, nil)
	remote.EXPECT().DeleteContact(ctx, testIdentity, int64(10)).Return(context.DeadlineExceeded)
	local.EXPECT().GetToSync(ctx).Return([]models.Contact{dirty}, nil)
	remote.EXPECT().UpdateContact(ctx, testIdentity, int64(20), gomock.Any()).Return(models.ContactToDTO(dirty), nil)
	local.EXPECT().MarkSynced(ctx, dirty, int64(20)).Return(true, nil)

	report, err := svc.SyncAll(ctx)

	require.ErrorIs(t, err, ErrSyncIncomplete)
	assert.Equal(t, models.SyncReport{Deleted: 0, Pushed: 1, Succeeded: 1, Failed: 1}, report)
}

func TestContactSyncService_SyncAll_MalformedCreateCountsAsFailure(t *testing.T) {
	svc, local, identity, remote := newTestSyncSvc(t)
	ctx := context.Background()

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return(nil, nil)
	local.EXPECT().GetToSync(ctx).Return([]models.Contact{{LocalID: 1, Name: "New", SyncState: models.ToSync}}, nil)
	remote.EXPECT().CreateContact(ctx, testIdentity, gomock.Any()).Return(models.ContactDTO{Name: "New"}, nil)

	report, err := svc.SyncAll(ctx)

	assert.ErrorIs(t, err, ErrSyncIncomplete)
	assert.Equal(t, 1, report.Failed)
}

func TestContactSyncService_SyncAll_ChangedMidPass_LeftDirty(t *testing.T) {
	svc, local, identity, remote := newTestSyncSvc(t)
	ctx := context.Background()

	dirty := models.Contact{LocalID: 2, RemoteID: ptr(int64(20)), Name: "Edited", SyncState: models.ToSync, Version: 5}

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return(nil, nil)
	local.EXPECT().GetToSync(ctx).Return([]models.Contact{dirty}, nil)
	remote.EXPECT().UpdateContact(ctx, testIdentity, int64(20), models.ContactToDTO(dirty)).Return(models.ContactToDTO(dirty), nil)
	local.EXPECT().MarkSynced(ctx, dirty, int64(20)).Return(false, nil)
	// no Update: the newer local row is left as it is

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncReport{Pushed: 1, Succeeded: 1}, report)
}

func TestContactSyncService_SyncAll_MarkSyncedFailureAborts(t *testing.T) {
	svc, local, identity, remote := newTestSyncSvc(t)
	ctx := context.Background()

	first := models.Contact{LocalID: 1, Name: "A", SyncState: models.ToSync}
	second := models.Contact{LocalID: 2, Name: "B", SyncState: models.ToSync}

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return(nil, nil)
	local.EXPECT().GetToSync(ctx).Return([]models.Contact{first, second}, nil)
	remote.EXPECT().CreateContact(ctx, testIdentity, models.ContactToDTO(first)).Return(models.ContactDTO{ID: ptr(int64(9)), Name: "A"}, nil)
	local.EXPECT().MarkSynced(ctx, first, int64(9)).Return(false, errDisk)

	report, err := svc.SyncAll(ctx)

	require.ErrorIs(t, err, errDisk)
	assert.Zero(t, report.Succeeded)
}

func TestContactSyncService_SyncAll_LocalFailureAborts(t *testing.T) {
	svc, local, identity, _ := newTestSyncSvc(t)
	ctx := context.Background()

	first := models.Contact{LocalID: 1, Name: "A", SyncState: models.ToDelete}
	second := models.Contact{LocalID: 2, Name: "B", SyncState: models.ToDelete}

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return([]models.Contact{first, second}, nil)
	local.EXPECT().HardDelete(ctx, int64(1)).Return(errDisk)
	// the pass stops: no second delete, no push phase

	report, err := svc.SyncAll(ctx)

	require.ErrorIs(t, err, errDisk)
	assert.NotErrorIs(t, err, ErrSyncIncomplete)
	assert.Zero(t, report.Succeeded)
}

func TestContactSyncService_SyncAll_SnapshotFailure(t *testing.T) {
	svc, local, identity, _ := newTestSyncSvc(t)
	ctx := context.Background()

	identity.EXPECT().Get(ctx).Return(testIdentity, nil)
	local.EXPECT().GetToDelete(ctx).Return(nil, nil)
	local.EXPECT().GetToSync(ctx).Return(nil, errDisk)

	_, err := svc.SyncAll(ctx)

	assert.ErrorIs(t, err, errDisk)
}

// Offline create followed by a pass once the server is reachable.
func TestContactSyncService_OfflineCreateThenSync(t *testing.T) {
	svc, local, identity, remote := newTestSyncSvc(t)
	ctx := context.Background()
	identity.EXPECT().Get(ctx).Return(testIdentity, nil).Times(2)

	local.EXPECT().Insert(ctx, gomock.Any()).Return(int64(1), nil)
	remote.EXPECT().CreateContact(ctx, testIdentity, gomock.Any()).Return(models.ContactDTO{}, errors.New("network is unreachable"))

	created, err := svc.Create(ctx, models.Contact{Name: "Doe"})
	require.NoError(t, err)
	require.Equal(t, models.ToSync, created.SyncState)
	require.Nil(t, created.RemoteID)

	local.EXPECT().GetToDelete(ctx).Return(nil, nil)
	local.EXPECT().GetToSync(ctx).Return([]models.Contact{created}, nil)
	remote.EXPECT().CreateContact(ctx, testIdentity, models.ContactToDTO(created)).Return(models.ContactDTO{ID: ptr(int64(77)), Name: "Doe"}, nil)
	local.EXPECT().MarkSynced(ctx, created, int64(77)).Return(true, nil)

	report, err := svc.SyncAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
}
