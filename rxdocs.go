// Package rxdocs provides storage and retrieval for the Reflex documentation
// corpus. It indexes pages broken into headed sections plus a catalog of
// named components, and serves ranked full-text search, page reconstruction,
// and component lookup.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/).
package rxdocs
