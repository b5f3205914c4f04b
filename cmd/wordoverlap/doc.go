// Package main hosts the wordoverlap CLI entrypoint and command graph.
//
// The Cobra command tree resolves inputs, runs the wordcount pipeline, and
// renders results as plain text, tables, or JSON. Configuration, logging,
// and the comparison history are wired once in commandContext so individual
// commands stay declarative.
package main
