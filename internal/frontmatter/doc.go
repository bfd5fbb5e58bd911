// Package frontmatter parses the metadata block at the top of SpecLite
// command templates. The dialect is deliberately small: a block bounded by
// two `---` marker lines holding scalar `key: value` pairs plus up to two
// nested mappings (`scripts:`, `agent_scripts:`) that map a script variant
// to a literal command string. Parsing is indentation-sensitive and uses an
// explicit two-state line scanner rather than regular expressions so that
// malformed indentation fails loudly in tests instead of silently misparsing.
package frontmatter
