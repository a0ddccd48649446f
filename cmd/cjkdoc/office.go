package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/chardet"
	"github.com/fwojciec/cjkdoc/etree"
	"github.com/fwojciec/cjkdoc/fs"
	"github.com/fwojciec/cjkdoc/pipeline"
	cjkslog "github.com/fwojciec/cjkdoc/slog"
)

// Run executes the office command.
func (c *OfficeCmd) Run(deps *Dependencies) error {
	if c.Output != "" && len(c.Inputs) > 1 {
		fmt.Fprintln(deps.Stderr, "error: --output can only be used with a single input")
		return cjkdoc.Errorf(cjkdoc.EINVALID, "--output can only be used with a single input")
	}

	reqs := make([]pipeline.Request, 0, len(c.Inputs))
	for _, input := range c.Inputs {
		req, err := c.request(deps.Stderr, input)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cjkdoc.ErrorMessage(err))
			fmt.Fprintf(deps.Stderr, "Valid formats: %s\n", formatList())
			return err
		}
		reqs = append(reqs, req)
	}

	converter, err := deps.NewConverter(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cjkdoc.ErrorMessage(err))
		return err
	}

	// Members that are not UTF-8 fail their session rather than being
	// written back with replacement characters.
	decoder := chardet.NewDecoder()
	decoder.Strict = true

	p := &pipeline.Pipeline{
		Converter: cjkslog.NewLoggingConverter(converter, deps.Logger),
		Decoder:   decoder,
		Validator: etree.NewValidator(),
		Logger:    deps.Logger,
	}

	inputHashes := make([]string, len(reqs))
	for i, req := range reqs {
		// A missing input fails its session; the hash stays empty.
		inputHashes[i], _ = fs.HashFile(req.Input)
	}

	out := newPrinter(deps.Stdout, deps.NoColor)
	results := p.ConvertAll(deps.Ctx, reqs, c.Concurrency, func(completed, total int, result *cjkdoc.Result) {
		out.result(completed, total, result)
	})

	var failed int
	for i, result := range results {
		if !result.OK {
			failed++
		}
		if deps.Conversions != nil {
			c.record(deps, result, inputHashes[i])
		}
	}

	if failed > 0 {
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%d of %d documents failed to convert", failed, len(results))
	}
	return nil
}

// request builds the session request for one input, printing the output
// path it chose when none was given.
func (c *OfficeCmd) request(stderr io.Writer, input string) (pipeline.Request, error) {
	format, err := c.format(input)
	if err != nil {
		return pipeline.Request{}, err
	}

	output := c.Output
	if output == "" {
		output = DefaultOutputPath(input, format, c.AutoExt)
		fmt.Fprintf(stderr, "Output file not specified. Using: %s\n", output)
	} else if c.AutoExt && filepath.Ext(output) == "" {
		output += "." + string(format)
		fmt.Fprintf(stderr, "Auto-extension applied: %s\n", output)
	}

	return pipeline.Request{
		Input:       input,
		Output:      output,
		Format:      format,
		Punctuation: c.Punctuation,
		KeepFont:    c.KeepFont,
	}, nil
}

func (c *OfficeCmd) format(input string) (cjkdoc.Format, error) {
	if c.Format != "" {
		return cjkdoc.ParseFormat(c.Format)
	}
	return cjkdoc.FormatFromPath(input)
}

func (c *OfficeCmd) record(deps *Dependencies, result *cjkdoc.Result, inputHash string) {
	conv := &cjkdoc.Conversion{
		InputPath:   absPath(result.Input),
		OutputPath:  absPath(result.Output),
		Format:      result.Format,
		Config:      c.Config,
		Punctuation: c.Punctuation,
		KeepFont:    c.KeepFont,
		Fragments:   result.Fragments(),
		Success:     result.OK,
		Message:     result.Message,
		InputHash:   inputHash,
	}
	if result.OK {
		conv.OutputHash, _ = fs.HashFile(result.Output)
	}

	if err := deps.Conversions.CreateConversion(deps.Ctx, conv); err != nil {
		deps.Logger.Warn("failed to record conversion", "input", result.Input, "error", err)
	}
}

// DefaultOutputPath returns <dir>/<stem>_converted<ext> for input. With
// autoExt the extension is taken from format instead of the input name.
func DefaultOutputPath(input string, format cjkdoc.Format, autoExt bool) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	if autoExt {
		ext = "." + string(format)
	}
	return filepath.Join(filepath.Dir(input), stem+"_converted"+ext)
}

func formatList() string {
	names := make([]string, len(cjkdoc.Formats))
	for i, f := range cjkdoc.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// printer writes per-document outcomes, coloured unless disabled.
type printer struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
	warn *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:    w,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		warn: color.New(color.FgYellow),
	}
	if noColor {
		p.ok.DisableColor()
		p.fail.DisableColor()
		p.warn.DisableColor()
	}
	return p
}

func (p *printer) result(completed, total int, r *cjkdoc.Result) {
	prefix := ""
	if total > 1 {
		prefix = fmt.Sprintf("[%d/%d] ", completed, total)
	}

	if !r.OK {
		p.fail.Fprintf(p.w, "%sFAIL %s: %s\n", prefix, r.Input, r.Message)
	} else {
		p.ok.Fprintf(p.w, "%sOK   %s: %s\n", prefix, r.Input, r.Message)
		fmt.Fprintf(p.w, "     Output saved to: %s\n", absPath(r.Output))
	}

	if len(r.Lossy) > 0 {
		p.warn.Fprintf(p.w, "     not valid UTF-8, invalid bytes replaced: %s\n", strings.Join(r.Lossy, ", "))
	}
	if len(r.Malformed) > 0 {
		p.warn.Fprintf(p.w, "     no longer well-formed XML: %s\n", strings.Join(r.Malformed, ", "))
	}
	for _, w := range r.Warnings {
		p.warn.Fprintf(p.w, "     warning: %s\n", w)
	}
}
