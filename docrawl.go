// Package docrawl turns a multi-page HTML manual into a flat,
// retrieval-ready corpus: one normalized JSON record per source page plus a
// stream of bounded-size markdown chunks with stable, content-addressed IDs
// suitable for embedding and indexing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package docrawl
