package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrOutputExists = errors.New("output file exists")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// skipped reports whether the file was left alone on purpose.
func (r ConversionResult) skipped() bool {
	return errors.Is(r.Err, ErrOutputExists)
}

// batchError reports failed conversions. It unwraps to every file error so
// the exit code reflects their kind.
type batchError struct {
	failed int
	errs   []error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() []error {
	return e.errs
}

// prompter asks overwrite questions one at a time. Workers share it, so
// questions and answers never interleave.
type prompter struct {
	mu  sync.Mutex
	in  *bufio.Reader // nil: every answer is no
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{out: out}
	if in != nil {
		p.in = bufio.NewReader(in)
	}
	return p
}

// confirmOverwrite asks whether path may be replaced. Only y and yes,
// in any case, count as consent.
func (p *prompter) confirmOverwrite(path string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.in == nil {
		return false
	}
	fmt.Fprintf(p.out, "overwrite %s? [y/N] ", path)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// convertBatch processes files concurrently. All workers share the
// converter, which holds no per-call state.
func convertBatch(ctx context.Context, files []FileToConvert, workers int, params *conversionParams, env *Environment) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))
	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, files[idx], params, env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, f FileToConvert, params *conversionParams, env *Environment) ConversionResult {
	start := env.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = env.Now().Sub(start)
		return result
	}

	if fileutil.FileExists(f.OutputPath) && !params.force && !params.prompt.confirmOverwrite(f.OutputPath) {
		return fail(fmt.Errorf("%w: %s", ErrOutputExists, f.OutputPath))
	}

	page, err := renderFile(ctx, f, params)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, page, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	result.Duration = env.Now().Sub(start)
	return result
}

// convertToWriter converts a single file to standard output.
func convertToWriter(ctx context.Context, f FileToConvert, params *conversionParams, env *Environment) error {
	page, err := renderFile(ctx, f, params)
	if err != nil {
		return fmt.Errorf("%s: %w", f.InputPath, err)
	}
	if _, err := io.WriteString(env.Stdout, page); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// renderFile reads and converts one markdown file to the page written out.
func renderFile(ctx context.Context, f FileToConvert, params *conversionParams) (string, error) {
	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	cfg := params.cfg
	res, err := params.conv.Convert(ctx, md2html.Input{
		Markdown:       string(content),
		HeadingClass:   cfg.HTML.HeadingClass,
		ParagraphClass: cfg.HTML.ParagraphClass,
		NoTOC:          !cfg.TOC.IsEnabled(),
		SourceDir:      filepath.Dir(f.InputPath),
		OutputDir:      filepath.Dir(f.OutputPath),
	})
	if err != nil {
		return "", err
	}

	if params.standalone {
		return md2html.Standalone(res.HTML, outputTitle(res, f.InputPath), params.css), nil
	}
	return res.HTML, nil
}

// printResultsWithWriter outputs conversion results and returns a
// *batchError when at least one file failed. Skipped files are not failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) error {
	var succeeded, skipped int
	var errs []error

	for _, r := range results {
		switch {
		case r.skipped():
			skipped++
			fmt.Fprintf(env.Stderr, "SKIPPED %s: %v%s\n", r.InputPath, r.Err, hints.ForOutputExists())
			continue
		case r.Err != nil:
			errs = append(errs, r.Err)
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", succeeded, skipped, len(errs))
	}

	if len(errs) > 0 {
		return &batchError{failed: len(errs), errs: errs}
	}
	return nil
}
