package ndarray

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Fprint renders the array as tables.
// Arrays with more than two dimensions are printed as a sequence of two dimensional layers,
// each introduced with its leading index, e.g. "[1, :, :]".
func (a *Array) Fprint(w io.Writer) error {
	switch len(a.shape) {
	case 0:
		_, err := fmt.Fprintln(w, formatFloat(a.data[0]))
		return err
	case 1:
		renderTable(w, 1, a.shape[0], a.data)
		return nil
	case 2:
		renderTable(w, a.shape[0], a.shape[1], a.data)
		return nil
	}

	var (
		lead  = a.shape[:len(a.shape)-2]
		rows  = a.shape[len(a.shape)-2]
		cols  = a.shape[len(a.shape)-1]
		layer = rows * cols
	)
	for l := 0; l < product(lead); l++ {
		if _, err := fmt.Fprintf(w, "[%s, :, :]\n", layerIndex(lead, l)); err != nil {
			return err
		}
		renderTable(w, rows, cols, a.data[l*layer:(l+1)*layer])
	}
	return nil
}

func renderTable(w io.Writer, rows, cols int, data []float64) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)

	header := []string{""}
	for c := 0; c < cols; c++ {
		header = append(header, strconv.Itoa(c))
	}
	table.SetHeader(header)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})

	for r := 0; r < rows; r++ {
		row := []string{strconv.Itoa(r)}
		for c := 0; c < cols; c++ {
			row = append(row, formatFloat(data[r*cols+c]))
		}
		table.Append(row)
	}
	table.Render()
}

func layerIndex(lead []int, l int) string {
	idx := make([]string, len(lead))
	for i := len(lead) - 1; 0 <= i; i-- {
		idx[i] = strconv.Itoa(l % lead[i])
		l /= lead[i]
	}
	return strings.Join(idx, ", ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
