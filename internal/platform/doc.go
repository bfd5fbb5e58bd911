// Package platform provides cross-platform filesystem permission handling.
// On Unix systems it applies chmod directly and derives execute bits for
// materialized shell scripts; on Windows both operations are no-ops because
// NTFS has no Unix-style permission bits.
package platform
