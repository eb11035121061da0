// Package github provides the repository search data source.
//
// The search is a thin pass-through to GitHub's REST endpoint
// GET /search/repositories. No retry, caching or pagination is layered on
// top; any transport or decoding failure is returned to the caller as an
// error.
package github
