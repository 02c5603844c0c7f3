package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// htmlFlags holds rendering flags.
type htmlFlags struct {
	headingClass   string
	paragraphClass string
	headRowCells   bool
	escapeAttrs    bool
	lineBreaks     bool
	autoIDs        bool
	highlight      string
	sanitize       bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	title    string
	minDepth int
	maxDepth int
	collapse bool
	disabled bool
}

// outputFlags holds output destination flags.
type outputFlags struct {
	path         string
	stdout       bool
	force        bool
	standalone   bool
	style        string
	rewriteLinks bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	workers int
	output  outputFlags
	html    htmlFlags
	toc     tocFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.stdout, "stdout", false, "write to standard output (single file)")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite without asking")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap in a full HTML document")
	fs.StringVar(&f.style, "style", "", "stylesheet name or path for --standalone")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "turn links to .md files into .html links")
}

// addHTMLFlags adds rendering flags to a FlagSet.
func addHTMLFlags(fs *flag.FlagSet, f *htmlFlags) {
	fs.StringVar(&f.headingClass, "heading-class", "", "CSS class for headings")
	fs.StringVar(&f.paragraphClass, "paragraph-class", "", "CSS class for paragraphs")
	fs.BoolVar(&f.headRowCells, "head-row-cells", false, "header cells only in the table head")
	fs.BoolVar(&f.escapeAttrs, "escape-attrs", false, "escape URLs, classes and alt text")
	fs.BoolVar(&f.lineBreaks, "line-breaks", false, "render soft and hard line breaks")
	fs.BoolVar(&f.autoIDs, "auto-ids", false, "generate ids for headings without {#id}")
	fs.StringVar(&f.highlight, "highlight", "", "syntax highlighting style")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize the generated HTML")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6)")
	fs.BoolVar(&f.collapse, "toc-collapse", false, "open one list per level jump")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable table of contents")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addHTMLFlags(fs, &f.html)
	addTOCFlags(fs, &f.toc)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses flags of the config command.
func parseConfigFlags(args []string, usage io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &commonFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, nil
}

// usageError marks a flag parse error as a usage error. flag.ErrHelp is
// kept as is so -h exits cleanly.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
