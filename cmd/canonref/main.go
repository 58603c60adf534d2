// Command canonref parses, formats, and tags scripture-style references
// against a loaded canon document.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/focuswithjustin/canonref/core/canonxml"
	"github.com/focuswithjustin/canonref/core/format"
	"github.com/focuswithjustin/canonref/core/parser"
	"github.com/focuswithjustin/canonref/internal/logging"
)

const version = "0.1.0"

var CLI struct {
	Canon   string     `name:"canon" short:"c" help:"Path to a canon XML document" required:""`
	Debug   bool       `name:"debug" help:"Enable debug-level parse tracing"`
	Parse   ParseCmd   `cmd:"" help:"Parse a reference string and print its canonical form"`
	Format  FormatCmd  `cmd:"" help:"Parse a reference string and re-render it with formatting options"`
	Tag     TagCmd     `cmd:"" help:"Tag references found in a block of text"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ParseCmd parses a reference string and prints its canonical ID form.
type ParseCmd struct {
	Hint string `name:"hint" help:"Book name to assume if the input doesn't start with one"`
	Ref  string `arg:"" help:"Reference string to parse"`
}

func (c *ParseCmd) Run(p *parser.Parser) error {
	var hint *string
	if c.Hint != "" {
		hint = &c.Hint
	}
	list := p.Parse(c.Ref, hint)
	fmt.Println(p.Refstring(list))
	return nil
}

// FormatCmd parses a reference string and re-renders it under the given
// display options.
type FormatCmd struct {
	Hint  string `name:"hint" help:"Book name to assume if the input doesn't start with one"`
	Title bool   `name:"title" help:"Display full book titles instead of short names (shorthand for --bkarg=title)"`
	Bkarg string `name:"bkarg" help:"Book attribute to display: name, title, or a canon-defined attribute key (e.g. osisID)"`
	Ref   string `arg:"" help:"Reference string to parse and re-render"`
}

func (c *FormatCmd) Run(p *parser.Parser) error {
	var hint *string
	if c.Hint != "" {
		hint = &c.Hint
	}
	list := p.Parse(c.Ref, hint)
	opts := format.Default()
	switch {
	case c.Bkarg != "":
		opts.BookArg = format.BookArg(c.Bkarg)
	case c.Title:
		opts.BookArg = format.BookArgTitle
	}
	fmt.Println(p.Format(list, opts))
	return nil
}

// TagCmd wraps every reference-shaped span of the given text in a <ref> tag.
type TagCmd struct {
	Hint string `name:"hint" help:"Book name to assume for leading bare chapter/verse spans"`
	Text string `arg:"" help:"Text to scan for references"`
}

func (c *TagCmd) Run(p *parser.Parser) error {
	var hint *string
	if c.Hint != "" {
		hint = &c.Hint
	}
	fmt.Println(p.TagText(c.Text, hint))
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("canonref version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("canonref"),
		kong.Description("Parse, format, and tag scripture-style references against a canon document"),
		kong.UsageOnError(),
	)

	if ctx.Command() == "version" {
		ctx.FatalIfErrorf(ctx.Run())
		return
	}

	level := logging.LevelInfo
	if CLI.Debug {
		level = logging.LevelDebug
	}
	logging.InitLogger(level, logging.FormatText)

	c, err := canonxml.LoadFile(CLI.Canon)
	if err != nil {
		fmt.Fprintln(os.Stderr, "canonref: loading canon:", err)
		os.Exit(1)
	}
	logging.CanonLoad(c.Name, c.Lang, len(c.Books))

	p := parser.New(c, logging.GetLogger())
	ctx.FatalIfErrorf(ctx.Run(p))
}
