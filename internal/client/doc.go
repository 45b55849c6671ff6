// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It drives the contact synchronization engine on behalf of the CLI
// commands, renders contacts and sync reports with lipgloss, and runs the
// background sync job for the watch command.
package client
