// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no transport servers configured")
	errGRPCListen          = errors.New("gRPC listener could not be opened")
)
