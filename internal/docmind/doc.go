// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package docmind provides the HTTP client for the DocuMind
// question-answering service.
//
// The client covers every collaborator endpoint: the answer request,
// best-effort session registration and conversation clearing, the
// statistics summary, document downloads (two routing variants), the
// document-directory listing, and the health check.
//
// # Error Taxonomy
//
// All failures surface as *ClientError with a Type for dispatch:
//
//   - ErrTypeUnreachable: transport failure, no response at all
//   - ErrTypeService: the service answered with its error field set
//   - ErrTypeDownload: a retrieval returned a structured {error} body
//   - ErrTypeInvalidResponse: undecodable or unexpected payload
//
// The answer request carries no client-side timeout: a hung request
// stays outstanding until it errors, succeeds, or its context is
// cancelled by the user.
package docmind
