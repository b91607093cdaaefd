// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/H0llyW00dzZ/binspan/src/pool"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits for human-readable byte counts, e.g. "1,048,576".
var printer = message.NewPrinter(language.English)

// summarize returns a one-line human-readable description of res.
func summarize(res *Result) string {
	return printer.Sprintf("%s: %d bytes in %d lines (in-place %d, consolidate %d, grow %d) in %s",
		res.Name, res.Bytes, len(res.Lines),
		res.Appends.InPlace, res.Appends.Consolidate, res.Appends.Grow,
		res.Elapsed.Round(time.Microsecond))
}

// namedMetrics pairs a pool name with its metrics snapshot.
type namedMetrics struct {
	name string
	m    pool.Metrics
}

// renderStats renders pool metrics as a markdown table.
func renderStats(results []*Result, pools ...namedMetrics) string {
	var buf bytes.Buffer

	var total int64
	for _, res := range results {
		total += res.Bytes
	}
	buf.WriteString(printer.Sprintf("Total: %d bytes from %d inputs\n\n", total, len(results)))

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Pool", "Capacity", "Idle", "Created", "Reused", "Returned", "Dropped"})

	rows := make([][]string, 0, len(pools))
	for _, p := range pools {
		rows = append(rows, []string{
			p.name,
			strconv.Itoa(p.m.Capacity),
			strconv.Itoa(p.m.Idle),
			fmt.Sprint(p.m.Created),
			fmt.Sprint(p.m.Reused),
			fmt.Sprint(p.m.Returned),
			fmt.Sprint(p.m.Dropped),
		})
	}
	table.Bulk(rows)
	table.Render()

	return buf.String()
}
