// Package renderer turns valuations and rebalance results into markdown.
//
// Every function returns plain markdown, the CLI decides whether to print it
// raw or styled for the terminal.
package renderer

import (
	"fmt"
	"io"
)

// table writes a markdown table header. align holds one of ":---" or "---:"
// per column.
func table(w io.Writer, align []string, columns ...string) {
	fmt.Fprint(w, "|")
	for _, c := range columns {
		fmt.Fprintf(w, " %s |", c)
	}
	fmt.Fprint(w, "\n|")
	for _, a := range align {
		fmt.Fprintf(w, "%s|", a)
	}
	fmt.Fprintln(w)
}

// row writes a markdown table row.
func row(w io.Writer, cells ...string) {
	fmt.Fprint(w, "|")
	for _, c := range cells {
		fmt.Fprintf(w, " %s |", c)
	}
	fmt.Fprintln(w)
}
