// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sources resolves citation tokens to display labels and
// download locators.
package sources

import (
	"net/url"
	"strings"
)

// =============================================================================
// ROUTING RULES
// =============================================================================

// ArchiveFolder is the storage location whose tokens require the
// archive retrieval route.
const ArchiveFolder = "saved_pdfs"

// Route identifies which retrieval endpoint serves a token.
type Route int

const (
	// RouteDefault serves ordinary uploaded files.
	RouteDefault Route = iota
	// RouteArchive serves files stored under the archive folder.
	RouteArchive
)

// String returns the route name for logging.
func (r Route) String() string {
	if r == RouteArchive {
		return "archive"
	}
	return "default"
}

// archiveMarker is the path segment that flags an archive token.
const archiveMarker = ArchiveFolder + "/"

// RouteFor returns the retrieval route for a citation token. The same
// shape test backs DisplayName and DownloadPath.
func RouteFor(token string) Route {
	if strings.Contains(token, archiveMarker) {
		return RouteArchive
	}
	return RouteDefault
}

// DisplayName returns the label shown for a citation token: archive
// tokens are stripped to the trailing filename, anything else is shown
// unchanged.
func DisplayName(token string) string {
	if idx := strings.Index(token, archiveMarker); idx >= 0 {
		return token[idx+len(archiveMarker):]
	}
	return token
}

// DownloadPath builds the request path for retrieving a token's file.
// Archive tokens route through the archive endpoint, everything else
// through the default endpoint.
func DownloadPath(token string) string {
	if RouteFor(token) == RouteArchive {
		return "/api/download/" + ArchiveFolder + "/" + url.PathEscape(DisplayName(token))
	}
	return "/api/download/" + url.PathEscape(token)
}

// =============================================================================
// RESOLVER
// =============================================================================

// Document is one entry of the service's document-directory listing.
type Document struct {
	Filename string
	Keyword  string
	Content  string
}

// Resolver maps citation tokens to display names, consulting the
// document listing for keyword-style tokens that match no filename.
type Resolver struct {
	byKeyword map[string]string
}

// NewResolver creates a resolver with an empty listing. Tokens resolve
// through the pure shape rules until a listing is installed.
func NewResolver() *Resolver {
	return &Resolver{byKeyword: make(map[string]string)}
}

// SetListing installs the document listing. Called once after the
// startup fetch; safe to call again if the listing is refreshed.
func (r *Resolver) SetListing(docs []Document) {
	m := make(map[string]string, len(docs))
	for _, d := range docs {
		if d.Keyword != "" && d.Filename != "" {
			m[d.Keyword] = d.Filename
		}
	}
	r.byKeyword = m
}

// DisplayName resolves a token to its label, preferring a listing
// match on keyword before falling back to the shape rules.
func (r *Resolver) DisplayName(token string) string {
	if filename, ok := r.byKeyword[token]; ok {
		return filename
	}
	return DisplayName(token)
}
