package demo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dataiter/windowkit/pkg/frame"
	"github.com/dataiter/windowkit/pkg/ndarray"
	"github.com/dataiter/windowkit/pkg/series"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrShapeTooLarge errorkit.Error = "ErrShapeTooLarge"

const maxAxisElements = 1 << 16

type AxisCommand struct {
	Shape string `flag:"shape" default:"2,3,4" desc:"comma separated dimensions of the arange array"`
	Op    string `flag:"op" default:"sum" enum:"sum,mean," desc:"reduction to apply along each axis"`

	Config Config
}

func (cmd AxisCommand) Summary() string { return "reduce an arange array along each of its axes" }

func (cmd AxisCommand) ServeCLI(w cli.Response, r *cli.Request) {
	run(w, r, "axis", func(ctx context.Context) error {
		shape, err := parseInts(cmd.Shape)
		if err != nil {
			return err
		}
		size, err := ndarray.SizeOf(shape...)
		if err != nil {
			return err
		}
		if maxAxisElements < size {
			return ErrShapeTooLarge.F("shape %s holds %d elements, at most %d can be demonstrated", formatShape(shape), size, maxAxisElements)
		}
		arr, err := ndarray.Arange(size).Reshape(shape...)
		if err != nil {
			return err
		}

		section(w, fmt.Sprintf("source (shape: %s)", formatShape(arr.Shape())))
		if err := arr.Fprint(w); err != nil {
			return err
		}

		for axis := 0; axis < arr.Ndim(); axis++ {
			var res *ndarray.Array
			switch cmd.Op {
			case "mean":
				res, err = arr.Mean(axis)
			default:
				res, err = arr.Sum(axis)
			}
			if err != nil {
				return err
			}
			logger.Debug(ctx, "reduced along axis",
				logging.Field("axis", axis),
				logging.Field("shape", res.Shape()))

			fmt.Fprintf(w, "\n--- %s along axis=%d ---\n", cmd.Op, axis)
			fmt.Fprintf(w, "shape: %s -> %s\n", formatShape(arr.Shape()), formatShape(res.Shape()))
			if err := res.Fprint(w); err != nil {
				return err
			}
		}
		return nil
	})
}

func formatShape(shape []int) string {
	out := "("
	for i, d := range shape {
		if 0 < i {
			out += ", "
		}
		out += strconv.Itoa(d)
	}
	if len(shape) == 1 {
		out += ","
	}
	return out + ")"
}

type SeriesCommand struct {
	Config Config
}

func (cmd SeriesCommand) Summary() string { return "iterate a labelled series by value, label and pair" }

func (cmd SeriesCommand) ServeCLI(w cli.Response, r *cli.Request) {
	run(w, r, "series", func(ctx context.Context) error {
		sales, err := series.New([]int{100, 150, 200, 175, 300}, []string{"Mon", "Tue", "Wed", "Thu", "Fri"})
		if err != nil {
			return err
		}
		sales.Name = "Sales"

		section(w, "labelled series")
		if err := sales.Fprint(w); err != nil {
			return err
		}

		fmt.Fprintf(w, "\nvalues:\n")
		for v := range sales.Values() {
			fmt.Fprintf(w, "  sales: %d\n", v)
		}
		fmt.Fprintf(w, "\nlabels:\n")
		for label := range sales.Labels() {
			fmt.Fprintf(w, "  day: %s\n", label)
		}
		fmt.Fprintf(w, "\nitems:\n")
		for label, v := range sales.Items() {
			fmt.Fprintf(w, "  %s: %d\n", label, v)
		}

		monday, err := sales.Get("Mon")
		if err != nil {
			return err
		}
		first, err := sales.At(0)
		if err != nil {
			return err
		}
		divider(w)
		fmt.Fprintf(w, "by label Mon: %d\n", monday)
		fmt.Fprintf(w, "by position 0: %d\n", first)
		return nil
	})
}

type FrameCommand struct {
	Column string `flag:"column" default:"Product" desc:"column whose values are listed on their own"`

	Config Config
}

func (cmd FrameCommand) Summary() string { return "iterate a product table by column, row and single column" }

func (cmd FrameCommand) ServeCLI(w cli.Response, r *cli.Request) {
	run(w, r, "frame", func(ctx context.Context) error {
		df, err := frame.New(
			frame.Col("Product", "A", "B", "C", "D"),
			frame.Col("Price", 10.5, 15.2, 8.9, 12.1),
			frame.Col("Quantity", 100, 80, 150, 90),
		)
		if err != nil {
			return err
		}
		column, err := df.Column(cmd.Column)
		if err != nil {
			return err
		}
		logger.Debug(ctx, "product frame built",
			logging.Field("rows", df.Len()),
			logging.Field("column", cmd.Column))

		section(w, "frame")
		if err := df.Fprint(w); err != nil {
			return err
		}

		fmt.Fprintf(w, "\ncolumns:\n")
		for name := range df.Columns() {
			fmt.Fprintf(w, "  column: %s\n", name)
		}

		fmt.Fprintf(w, "\nrows:\n")
		for i, row := range df.Rows() {
			var fields []string
			for name, v := range row.Items() {
				fields = append(fields, fmt.Sprintf("%s=%v", name, v))
			}
			fmt.Fprintf(w, "  row %d: %s\n", i, strings.Join(fields, ", "))
		}

		fmt.Fprintf(w, "\n%s values:\n", cmd.Column)
		for v := range column {
			fmt.Fprintf(w, "  %v\n", v)
		}

		quantities, err := frame.ColumnOf[int](df, "Quantity")
		if err != nil {
			return err
		}
		var total int
		for q := range quantities {
			total += q
		}
		divider(w)
		fmt.Fprintf(w, "total quantity: %d\n", total)
		return nil
	})
}
