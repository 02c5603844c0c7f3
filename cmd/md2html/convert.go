package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrNoInput         = errors.New("no input specified")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrReadCSS         = errors.New("failed to read CSS file")
	ErrStdoutBatch     = errors.New("--stdout needs a single input file")
)

// conversionParams groups what every file of a batch shares.
type conversionParams struct {
	conv       CLIConverter
	cfg        *config.Config
	css        string // stylesheet of standalone documents
	force      bool
	standalone bool
	prompt     *prompter
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output.path, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}
	if flags.output.stdout && len(files) > 1 {
		return fmt.Errorf("%w: %s holds %d files%s", ErrStdoutBatch, inputPath, len(files), hints.ForStdoutBatch())
	}

	conv, err := md2html.New(buildOptions(cfg)...)
	if err != nil {
		if errors.Is(err, md2html.ErrUnknownHighlightStyle) {
			return fmt.Errorf("%w%s", err, hints.ForHighlightStyle())
		}
		return err
	}

	params := &conversionParams{
		conv:       conv,
		cfg:        cfg,
		force:      flags.output.force,
		standalone: cfg.Output.Standalone,
		prompt:     newPrompter(env.Stdin, env.Stderr),
	}
	if params.standalone {
		if params.css, err = resolveStylesheet(cfg, conv); err != nil {
			return err
		}
	}

	if flags.output.stdout {
		return convertToWriter(ctx, files[0], params, env)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", min(workers, len(files)))
	}

	results := convertBatch(ctx, files, workers, params, env)
	return printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
}

// loadConfig reads the config file named by the flag, or by MD2HTML_CONFIG.
// Without either the defaults apply.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Output flags
	if flags.output.standalone {
		cfg.Output.Standalone = true
	}
	if flags.output.rewriteLinks {
		cfg.Output.RewriteLinks = true
	}
	if flags.output.style != "" {
		cfg.CSS.Style = flags.output.style
	}

	// HTML flags
	if flags.html.headingClass != "" {
		cfg.HTML.HeadingClass = flags.html.headingClass
	}
	if flags.html.paragraphClass != "" {
		cfg.HTML.ParagraphClass = flags.html.paragraphClass
	}
	if flags.html.headRowCells {
		cfg.HTML.TableHeaders = config.TableHeadersHeadRow
	}
	if flags.html.escapeAttrs {
		cfg.HTML.EscapeAttributes = true
	}
	if flags.html.lineBreaks {
		cfg.HTML.LineBreaks = true
	}
	if flags.html.autoIDs {
		cfg.Headings.AutoID = true
	}
	if flags.html.highlight != "" {
		cfg.HTML.Highlight = flags.html.highlight
	}
	if flags.html.sanitize {
		cfg.HTML.Sanitize = true
	}

	// TOC flags
	if flags.toc.title != "" {
		cfg.TOC.Title = flags.toc.title
	}
	if flags.toc.minDepth != 0 {
		cfg.TOC.MinDepth = flags.toc.minDepth
	}
	if flags.toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = flags.toc.maxDepth
	}
	if flags.toc.collapse {
		cfg.TOC.Nesting = config.NestingCollapsed
	}
	if flags.toc.disabled {
		disabled := false
		cfg.TOC.Enabled = &disabled
	}
}

// buildOptions translates a validated config into converter options.
func buildOptions(cfg *config.Config) []md2html.Option {
	opts := []md2html.Option{
		md2html.WithAttributeEscaping(cfg.HTML.EscapeAttributes),
		md2html.WithLineBreaks(cfg.HTML.LineBreaks),
		md2html.WithAutoHeadingID(cfg.Headings.AutoID),
		md2html.WithSanitize(cfg.HTML.Sanitize),
		md2html.WithMarkdownLinks(cfg.Output.RewriteLinks),
		md2html.WithTOCTitle(cfg.TOC.Title),
	}

	if strings.EqualFold(cfg.HTML.TableHeaders, config.TableHeadersHeadRow) {
		opts = append(opts, md2html.WithCellRole(md2html.CellRoleHeadRow))
	}
	if strings.EqualFold(cfg.TOC.Nesting, config.NestingCollapsed) {
		opts = append(opts, md2html.WithTOCNesting(md2html.TOCNestingCollapsed))
	}

	minDepth, maxDepth := cfg.TOC.MinDepth, cfg.TOC.MaxDepth
	if minDepth == 0 {
		minDepth = md2html.MinHeadingLevel
	}
	if maxDepth == 0 {
		maxDepth = md2html.MaxHeadingLevel
	}
	opts = append(opts, md2html.WithTOCDepth(minDepth, maxDepth))

	if cfg.HTML.Highlight != "" {
		opts = append(opts, md2html.WithHighlighting(cfg.HTML.Highlight))
	}
	return opts
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveStylesheet returns the CSS embedded in standalone documents: the
// configured style, by path or by name, followed by the highlighting rules.
func resolveStylesheet(cfg *config.Config, conv *md2html.Converter) (string, error) {
	css, err := loadStyle(cfg.CSS.Style, cfg.Assets.BasePath)
	if err != nil {
		return "", err
	}

	highlightCSS, err := conv.HighlightCSS()
	if err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	if highlightCSS != "" {
		css = strings.TrimRight(css, "\n") + "\n" + highlightCSS
	}
	return css, nil
}

// loadStyle reads style from disk when it looks like a path, and through
// the asset resolver otherwise. An empty style selects the default one.
func loadStyle(style, basePath string) (string, error) {
	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		return string(content), nil
	}

	if style == "" {
		style = assets.DefaultStyleName
	}
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return "", fmt.Errorf("loading assets: %w", err)
	}
	css, err := resolver.LoadStyle(style)
	if errors.Is(err, assets.ErrStyleNotFound) {
		return "", fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames()))
	}
	return css, err
}

// outputTitle names a standalone document after its first heading, or after
// its file when it has none.
func outputTitle(res *md2html.Result, inputPath string) string {
	if title := res.Title(); title != "" {
		return title
	}
	return strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
}
