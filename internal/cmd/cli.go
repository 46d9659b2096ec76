package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
)

// CLI wraps the input and output of the command line program. Commands
// read from and write to these streams instead of using os.Stdin and
// os.Stdout directly so that tests can substitute buffers.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c *CLI) Output(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout, format+"\n", args...)
}

type ctxKey struct{}

func newCLI(ctx context.Context) (context.Context, *CLI) {
	if cli, ok := ctx.Value(ctxKey{}).(*CLI); ok {
		return ctx, cli
	}
	cli := &CLI{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return context.WithValue(ctx, ctxKey{}, cli), cli
}
