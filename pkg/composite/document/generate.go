// Package document is the generated composite for the document schema: a
// grow-only tag set, a map of share lists, a view counter, a last-writer-wins
// title and a vector clock, replicated per uuid actor.
package document

//go:generate go run compositecrdt/cmd/crdtgen -schema document.yaml -out document.go
