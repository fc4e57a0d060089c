// Package refdex turns API reference documentation into a retrievable
// corpus. It parses documentation HTML into structured API entity records,
// serializes them as a JSON Lines corpus, and embeds them into a vector
// store for semantic querying.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package refdex
