package probe

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Report writes one line per result and returns how many failed.
func Report(w io.Writer, results []Result) int {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)

	failed := 0
	for _, r := range results {
		line := fmt.Sprintf("%-8s %-6s %-28s %3d", r.Endpoint.Framework, r.Endpoint.Method, r.Endpoint.Path, r.Status)
		if r.OK() {
			_, _ = ok.Fprintf(w, "%s ok\n", line)
			continue
		}
		failed++
		_, _ = bad.Fprintf(w, "%s %v\n", line, r.Err)
	}
	return failed
}
