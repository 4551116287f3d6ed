package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

type TableRowDataInsertor func(*Table) error

type NewTableOpts struct {
	Headers []string
	Rows    TableRowDataInsertor
}

func NewTable(opts NewTableOpts) *Table {
	table := &Table{
		Rows: opts.Rows,
	}
	return table.Init(opts.Headers)
}

type Table struct {
	data  bytes.Buffer
	table *tablewriter.Table

	Rows TableRowDataInsertor
}

func (t *Table) Init(headers []string) *Table {
	t.table = tablewriter.NewWriter(&t.data)
	t.table.Options(tablewriter.WithHeaderAlignment(tw.AlignLeft))
	t.table.Configure(func(cfg *tablewriter.Config) {
		width, _, _ := term.GetSize(int(os.Stdout.Fd()))
		cfg.MaxWidth = width
	})
	t.table.Header(headers)
	return t
}

func (t *Table) Render() *Table {
	t.Rows(t)
	return t
}

func (t *Table) NewRow(values ...any) error {
	row := []string{}
	for _, value := range values {
		var valueAsString string
		switch v := value.(type) {
		case int, int64, float64:
			valueAsString = fmt.Sprintf("%v", v)
		case string:
			valueAsString = v
		}
		row = append(row, valueAsString)
	}
	return t.table.Append(row)
}

func (t *Table) GetString() string {
	t.table.Render()
	return t.data.String()
}
