// Package materialize applies a fully rendered staging tree onto a
// destination directory. A fresh destination receives the staging tree
// verbatim; a pre-existing destination is merged entry by entry under
// per-path rules (overwrite, deep-merge-as-JSON for recognized settings
// files, copy-subtree-if-absent). Merging never deletes destination-only
// content, and partial merge edits are not rolled back on failure; that
// non-atomicity is a documented limitation of merge mode.
package materialize
