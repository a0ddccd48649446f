package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/chardet"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	data, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	decoded, err := chardet.NewDecoder().DecodeFrom(data, c.InEnc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cjkdoc.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: Use --in-enc to name the input encoding")
		return err
	}
	if decoded.Charset != "" {
		deps.Logger.Debug("decoded input", "charset", decoded.Charset)
	}

	converter, err := deps.NewConverter(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cjkdoc.ErrorMessage(err))
		return err
	}

	out, err := converter.Convert(decoded.Text, c.Punctuation)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: conversion failed: %s\n", err)
		return err
	}

	encoded, err := chardet.Encode(out, c.OutEnc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cjkdoc.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		_, err := deps.Stdout.Write(encoded)
		return err
	}

	if err := os.WriteFile(c.Output, encoded, 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	in := c.Input
	if in == "" {
		in = "<stdin>"
	}
	fmt.Fprintf(deps.Stderr, "Conversion completed (%s): %s -> %s\n", c.Config, in, c.Output)
	return nil
}

func (c *ConvertCmd) read(stdin io.Reader) ([]byte, error) {
	if c.Input == "" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.Input, err)
	}
	return data, nil
}
