package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/noah-isme/unigov-client/internal/models"
)

// render prints v as indented JSON, or as a table through rows when the
// table format is selected and rows is not nil.
func (a *App) render(v interface{}, rows func(w io.Writer)) error {
	if a.format == FormatJSON || rows == nil {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	rows(tw)
	return tw.Flush()
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.stdout, format, args...)
}

func row(w io.Writer, cols ...interface{}) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

func when(t models.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func whenPtr(t *models.Timestamp) string {
	if t == nil {
		return "-"
	}
	return when(*t)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// report prints v as JSON in json mode and a one-line message otherwise.
func (a *App) report(v interface{}, format string, args ...interface{}) error {
	if a.format == FormatJSON {
		return a.render(v, nil)
	}
	a.printf(format+"\n", args...)
	return nil
}
