// Package scrapedocs collects the documentation text of Python packages
// from their published documentation sites. It resolves a package name to
// a documentation home page through the package index, discovers the
// reference pages linked from it, and extracts the main content of each
// page as clean, reflowed text keyed by section title.
//
// This package contains domain types, interfaces and pure text helpers
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, pypi/, sqlite/).
package scrapedocs
