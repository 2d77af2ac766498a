package eval

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const corner = "pred \\ true"

// Render writes the matrix as a table with predicted labels as rows and true labels as columns.
func (cm ConfusionMatrix) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	header := make([]string, 0, cm.Size()+1)
	header = append(header, corner)
	for _, l := range cm.classes.labels {
		header = append(header, strconv.Itoa(l))
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	for p, row := range cm.counts {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(cm.classes.labels[p]))
		for _, c := range row {
			cells = append(cells, strconv.Itoa(c))
		}
		table.Append(cells)
	}
	table.Render()
}

func (cm ConfusionMatrix) String() string {
	s := new(strings.Builder)
	cm.Render(s)
	return s.String()
}
