// Command crdtgen reads a composite schema and writes the generated Go
// source for its composite CRDT type.
package main

import (
	"flag"
	"log/slog"
	"os"

	"compositecrdt/pkg/gen"
	"compositecrdt/pkg/schema"
	"compositecrdt/pkg/util/logging"
)

func main() {
	schemaPath := flag.String("schema", "schema.yaml", "path to the schema file")
	outPath := flag.String("out", "", "output file (stdout when empty)")
	flag.Parse()

	logging.InitDefault()

	s, err := schema.Read(*schemaPath)
	if err != nil {
		slog.Error("read schema", "path", *schemaPath, "err", err)
		os.Exit(1)
	}

	src, err := gen.Generate(s)
	if err != nil {
		slog.Error("generate", "name", s.Name, "err", err)
		os.Exit(1)
	}

	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}

	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		slog.Error("write output", "path", *outPath, "err", err)
		os.Exit(1)
	}

	slog.Info("generated", "name", s.Name, "fields", len(s.Fields), "out", *outPath)
}
