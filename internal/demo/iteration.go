package demo

import (
	"context"
	"fmt"
	"slices"

	"github.com/dataiter/windowkit/pkg/statkit"
	"github.com/dataiter/windowkit/pkg/windowkit"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

type BatchCommand struct {
	Size int `flag:"size" default:"4" desc:"number of values in a batch"`
	N    int `flag:"n" default:"20" desc:"the values 1..n are batched"`

	Config Config
}

func (cmd BatchCommand) Summary() string { return "cut 1..n into fixed size batches and summarise each" }

func (cmd BatchCommand) ServeCLI(w cli.Response, r *cli.Request) {
	run(w, r, "batch", func(ctx context.Context) error {
		source := slices.Collect(iterkit.IntRange(1, cmd.N))
		summaries, err := statkit.BatchSummaries(source, cmd.Size)
		if err != nil {
			return err
		}
		logger.Debug(ctx, "batched source",
			logging.Field("length", len(source)),
			logging.Field("batches", len(summaries)))

		section(w, "batch processing")
		fmt.Fprintf(w, "source: %v\n", source)
		fmt.Fprintf(w, "length: %d\n", len(source))
		fmt.Fprintf(w, "batches: %d\n\n", windowkit.BatchCount(len(source), cmd.Size))
		for _, s := range summaries {
			fmt.Fprintf(w, "batch %d: %v -> sum=%d, mean=%s\n",
				s.Index+1, s.Values, s.Sum, cmd.Config.FormatFloat(s.Mean))
		}
		return nil
	})
}

type MovingCommand struct {
	Window int    `flag:"window" default:"3" desc:"moving average window size"`
	Values string `flag:"values" default:"100,102,98,105,107,103,99,101,104,106" desc:"comma separated prices"`

	Config Config
}

func (cmd MovingCommand) Summary() string { return "moving average over a sliding window" }

func (cmd MovingCommand) ServeCLI(w cli.Response, r *cli.Request) {
	run(w, r, "moving", func(ctx context.Context) error {
		prices, err := parseInts(cmd.Values)
		if err != nil {
			return err
		}
		windows, err := windowkit.Sliding(prices, cmd.Window)
		if err != nil {
			return err
		}
		defer windows.Close()

		section(w, "moving average")
		fmt.Fprintf(w, "prices: %v\n", prices)
		fmt.Fprintf(w, "windows: %d\n\n", windowkit.WindowCount(len(prices), cmd.Window))
		for n := 1; windows.Next(); n++ {
			window := windows.Value()
			fmt.Fprintf(w, "window %d: %v -> mean=%s\n", n, window, cmd.Config.FormatFloat(statkit.Mean(window)))
		}
		return windows.Err()
	})
}

type FilterCommand struct {
	Min    int    `flag:"min" default:"90" desc:"lowest passing score"`
	Values string `flag:"values" default:"85,92,78,96,88,75,90,82,94,87" desc:"comma separated scores"`

	Config Config
}

func (cmd FilterCommand) Summary() string { return "keep the scores that reach the threshold" }

func (cmd FilterCommand) ServeCLI(w cli.Response, r *cli.Request) {
	run(w, r, "filter", func(ctx context.Context) error {
		scores, err := parseInts(cmd.Values)
		if err != nil {
			return err
		}
		passing, err := windowkit.Filter(scores, func(score int) bool { return cmd.Min <= score })
		if err != nil {
			return err
		}
		got, err := iterkit.CollectPullIter[int](passing)
		if err != nil {
			return err
		}

		section(w, "filtering")
		fmt.Fprintf(w, "scores: %v\n", scores)
		fmt.Fprintf(w, "scores >= %d: %v\n", cmd.Min, got)
		fmt.Fprintf(w, "count: %d\n", len(got))
		fmt.Fprintf(w, "rate: %s%%\n", cmd.Config.FormatFloat(statkit.Ratio(len(got), len(scores))*100))
		return nil
	})
}
