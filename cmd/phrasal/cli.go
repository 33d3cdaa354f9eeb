package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/bjaus/phrasal"
)

// CLI is the top-level command-line interface.
type CLI struct {
	Globals

	Call CallCmd `cmd:"" default:"withargs" help:"Match a phrase and print the bound options"`
	Next NextCmd `cmd:""                    help:"List the words a phrase accepts next"`
}

// Globals holds flags shared by every command.
type Globals struct {
	Grammar  string `help:"Grammar file (.json, .yaml, or .yml)" required:"" short:"g" type:"existingfile"`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})" name:"log-level"`

	out io.Writer `kong:"-"`
}

// Run parses args and executes the selected command, writing results to out.
func Run(out io.Writer, exit func(code int), args ...string) error {
	cli := CLI{Globals: Globals{out: out}}

	parser, err := kong.New(&cli,
		kong.Name("phrasal"),
		kong.Description("Evaluate phrases against a phrasal grammar."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return ktx.Run(&cli.Globals)
}

func (g *Globals) logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// root loads the grammar and returns the root node.
func (g *Globals) root() (*phrasal.Node[match], error) {
	raw, err := os.ReadFile(g.Grammar)
	if err != nil {
		return nil, err
	}
	templates, err := loadGrammar(g.Grammar, raw)
	if err != nil {
		return nil, fmt.Errorf("load grammar %s: %w", g.Grammar, err)
	}

	p := phrasal.New[match](phrasal.Empty(), phrasal.WithLogger(g.logger()))
	for _, t := range templates {
		p.Add(t)
	}
	return p.Root()
}

// match is what every grammar function returns: the function that matched
// with the options and arguments it was called with.
type match struct {
	Func     string          `json:"func"`
	Options  phrasal.Options `json:"options"`
	Args     []any           `json:"args"`
}

// CallCmd matches a phrase and prints the match as JSON.
type CallCmd struct {
	Phrase string   `arg:"" help:"Dotted phrase, e.g. my.day"`
	Args   []string `arg:"" help:"Arguments passed through to the function" optional:""`
}

// Run executes the call command.
func (c *CallCmd) Run(g *Globals) error {
	root, err := g.root()
	if err != nil {
		return err
	}

	args := make([]any, len(c.Args))
	for i, a := range c.Args {
		args[i] = a
	}

	res, err := root.Call(c.Phrase, args...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(g.out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// NextCmd prints the words accepted after a phrase, one per line.
type NextCmd struct {
	Phrase string `arg:"" help:"Dotted phrase prefix; empty for the first word" optional:""`
}

// Run executes the next command.
func (n *NextCmd) Run(g *Globals) error {
	root, err := g.root()
	if err != nil {
		return err
	}

	s, err := root.Walk(phrasal.ParsePhrase(n.Phrase)...)
	if err != nil {
		return err
	}
	if s.Kind != phrasal.KindNode {
		return fmt.Errorf("%q is a complete phrase", n.Phrase)
	}

	words, err := s.Node.Next()
	if err != nil {
		return err
	}
	if len(words) > 0 {
		_, err = fmt.Fprintln(g.out, strings.Join(words, "\n"))
	}
	return err
}
