// Package history persists completed comparisons in a SQLite database so past
// runs can be listed from the CLI.
//
// Each entry records both input texts, the tokenizer options, and the outcome
// (winning word and combined count, or no match). Schema creation and bulk
// deletes run under an exclusive file lock next to the database so concurrent
// CLI invocations cannot race on first use. Busy errors from SQLite are retried
// with exponential backoff.
package history
