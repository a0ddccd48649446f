package main

import (
	"fmt"

	"github.com/fwojciec/cjkdoc"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Conversions == nil {
		fmt.Fprintln(deps.Stderr, "error: history database is not available")
		return cjkdoc.Errorf(cjkdoc.EINTERNAL, "history database is not available")
	}

	filter := cjkdoc.ConversionFilter{Limit: c.Limit}
	if c.Failed {
		failed := false
		filter.Success = &failed
	}

	conversions, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cjkdoc.ErrorMessage(err))
		return err
	}

	if len(conversions) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions recorded yet. Use 'cjkdoc office' to convert a document.")
		return nil
	}

	for _, conv := range conversions {
		status := "OK"
		if !conv.Success {
			status = "FAIL"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-4s  %-4s  %-5s  %s -> %s  %s\n",
			conv.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			status,
			conv.Format,
			conv.Config,
			conv.InputPath,
			conv.OutputPath,
			conv.Message,
		)
	}

	return nil
}
