package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A markdown file or directory as first argument runs convert.")
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML with a table of contents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file or directory (default: next to input)")
	fmt.Fprintln(w, "      --stdout               Write to standard output (single file only)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto, max 16)")
	fmt.Fprintln(w, "  -f, --force                Overwrite existing files without asking")
	fmt.Fprintln(w, "      --rewrite-links        Turn links to .md files into .html links")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HTML:")
	fmt.Fprintln(w, "      --heading-class <s>    CSS class for headings")
	fmt.Fprintln(w, "      --paragraph-class <s>  CSS class for paragraphs")
	fmt.Fprintln(w, "      --head-row-cells       Header cells only in the table head")
	fmt.Fprintln(w, "      --escape-attrs         Escape URLs, classes and alt text")
	fmt.Fprintln(w, "      --line-breaks          Render soft and hard line breaks")
	fmt.Fprintln(w, "      --auto-ids             Generate ids for headings without {#id}")
	fmt.Fprintln(w, "      --highlight <style>    Syntax highlighting style (e.g. github, monokai)")
	fmt.Fprintln(w, "      --sanitize             Sanitize the generated HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc-title <s>        TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>    Min heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-max-depth <n>    Max heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-collapse         Open one list per level jump")
	fmt.Fprintln(w, "      --no-toc               Disable table of contents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone           Wrap in a full HTML document")
	fmt.Fprintln(w, "      --style <name|path>    Stylesheet for --standalone (default, minimal)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_OUTPUT_DIR, MD2HTML_STYLE, MD2HTML_HIGHLIGHT, MD2HTML_WORKERS")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration convert would use, as YAML.")
	fmt.Fprintln(w, "Environment overrides are applied; flags of convert are not.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
