// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the EduResources client.
//
// [NewApp] wires the server adapter, the token store, the session, the
// services and the background workers from a [config.ClientConfig]. Both
// front-ends, the command line and the terminal browser, run on top of one
// App.
package client
