// Package review runs interactive translation sessions.
//
// A Session moves through Initializing, Prompting and Complete (or Cancelled
// when interrupted). Initialization records which Leaves of the source the
// destination lacks, then copies them over with reconcile.PropagateMissing so
// that every prompt has a value to show. Each pending path is then offered to a
// Prompter; a non-empty answer replaces the destination value at that path.
//
// The session only mutates the destination tree in memory. Persisting it is the
// caller's job, and callers that are interrupted simply skip the save.
//
// Terminal is the Prompter used by the CLI. It renders prompts with lipgloss,
// erases answered prompts when attached to a TTY, and echoes accepted edits as
// a word diff.
package review
