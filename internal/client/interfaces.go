// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is the set of operations exposed by the command-line client. Every
// method writes its human-readable result to the client's output.
type Client interface {
	Enroll(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, localID int64) error
	Add(ctx context.Context, fields ContactFields) error
	Edit(ctx context.Context, localID int64, fields ContactFields) error
	Remove(ctx context.Context, localID int64) error
	Sync(ctx context.Context) error
	// Watch runs the background sync job until ctx is cancelled.
	Watch(ctx context.Context) error
}
