// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server has no
// HTTP address or no services to serve. The server cannot start without a
// handler, so this is fatal at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
