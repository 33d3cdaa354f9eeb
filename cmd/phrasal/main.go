// Command phrasal evaluates phrases against a grammar file.
//
//	phrasal call -g grammar.yaml not.my.day party
//	phrasal next -g grammar.yaml my
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := Run(os.Stdout, os.Exit, os.Args[1:]...); err != nil {
		slog.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
