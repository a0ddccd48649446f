package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cjkdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Conversions records office sessions. Nil when history is disabled.
	Conversions cjkdoc.ConversionService

	NewConverter func(config string) (cjkdoc.Converter, error)

	NoColor bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ConfigFile kong.ConfigFlag `name:"config-file" help:"YAML file with default flag values"`
	DB         string          `name:"db" help:"History database path (default: CJKDOC_DB env or ~/.cjkdoc/history.db)"`
	Verbose    bool            `short:"v" help:"Enable debug logging"`
	NoColor    bool            `name:"no-color" help:"Disable coloured output"`

	Office  OfficeCmd  `cmd:"" help:"Convert Office, OpenDocument and EPUB documents"`
	Convert ConvertCmd `cmd:"" help:"Convert plain text from a file or stdin"`
	History HistoryCmd `cmd:"" help:"List recorded document conversions"`
}

// OfficeCmd is the "office" subcommand.
type OfficeCmd struct {
	Inputs      []string `arg:"" name:"input" help:"Documents to convert"`
	Output      string   `short:"o" help:"Output file (single input only)"`
	Format      string   `short:"f" help:"Document format (docx, xlsx, pptx, odt, ods, odp, epub); inferred from the extension when omitted"`
	Config      string   `short:"c" default:"s2t" help:"OpenCC config (s2t, t2s, s2tw, tw2s, s2twp, tw2sp, s2hk, hk2s, t2tw, t2hk)"`
	Punctuation bool     `short:"p" help:"Also convert quotation marks"`
	KeepFont    bool     `name:"keep-font" help:"Keep font names unchanged"`
	AutoExt     bool     `name:"auto-ext" help:"Append the format extension to an output without one"`
	Concurrency int      `short:"j" default:"4" help:"Documents converted at the same time"`
	NoHistory   bool     `name:"no-history" help:"Do not record conversions in the history database"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Input       string `short:"i" help:"Input file (default: stdin)"`
	Output      string `short:"o" help:"Output file (default: stdout)"`
	Config      string `short:"c" default:"s2t" help:"OpenCC config"`
	Punctuation bool   `short:"p" help:"Also convert quotation marks"`
	InEnc       string `name:"in-enc" help:"Input encoding, e.g. gbk or big5 (default: UTF-8, or detected when the input is not UTF-8)"`
	OutEnc      string `name:"out-enc" default:"utf-8" help:"Output encoding"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit  int  `short:"n" default:"20" help:"Maximum number of records to show"`
	Failed bool `help:"Only show failed conversions"`
}
