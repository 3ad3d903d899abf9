// Package demo holds the narrated demonstrations served by the windowdemo command.
package demo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// NewMux registers every demonstration as a sub command.
func NewMux(c Config) *cli.Mux {
	var m cli.Mux
	m.Handle("batch", BatchCommand{Config: c})
	m.Handle("moving", MovingCommand{Config: c})
	m.Handle("filter", FilterCommand{Config: c})
	m.Handle("groupby", GroupByCommand{Config: c})
	m.Handle("axis", AxisCommand{Config: c})
	m.Handle("series", SeriesCommand{Config: c})
	m.Handle("frame", FrameCommand{Config: c})
	return &m
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
}

func divider(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", 60))
}

// run logs the lifecycle of a demonstration and reports its error on the cli response with an error exit code.
func run(w cli.Response, r *cli.Request, name string, blk func(ctx context.Context) error) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", name))
	logger.Debug(ctx, "demonstration started")
	if err := blk(ctx); err != nil {
		logger.Error(ctx, "demonstration failed", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(w, err.Error())
		return
	}
	logger.Debug(ctx, "demonstration finished")
}
