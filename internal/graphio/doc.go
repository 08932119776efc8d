// Package graphio turns external input into a *core.Graph.
//
// Three sources are supported:
//
//   - Read: a text stream. The first content line holds "V E"; each
//     following content line holds one edge "u v". Blank lines and lines
//     starting with '#' are skipped.
//   - Interactive: the same dialogue driven through terminal prompts
//     (AlecAivazis/survey), re-asking until each edge is valid.
//   - Generate: a named family from package builder, e.g. "cycle:8".
//
// Invalid edges (self-loops or endpoints outside the vertex range) are
// never fatal: they are logged at warn level, do not count toward E and
// the next line is read instead. Identifiers are 0-based unless OneBased
// is set, in which case 1..V are accepted and shifted down by one. The
// graph itself is always 0-based.
package graphio
