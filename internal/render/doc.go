// Package render turns command template documents into agent-specific
// output files. One template plus one agent profile (with a fixed script
// variant) yields one rendered command: script commands are resolved from
// the template's frontmatter mappings, placeholder tokens are substituted,
// build-time sections are stripped, resource references are rewritten under
// the project namespace, and the result is emitted either verbatim or
// wrapped as a structured-prompt document depending on the profile.
package render
