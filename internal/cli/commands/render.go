package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/numo-sh/numo/internal/engine"
)

// resultOutput is the JSON shape of one rendered result.
type resultOutput struct {
	Input    string `json:"input"`
	OK       bool   `json:"ok"`
	Resolver string `json:"resolver,omitempty"`
	Output   string `json:"output,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

func toOutput(r engine.Result) resultOutput {
	out := resultOutput{
		Input:    r.Input,
		OK:       r.OK(),
		Resolver: r.Resolver,
		Output:   r.Output,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
		out.Kind = engine.FailureKind(r.Err)
	}
	return out
}

// renderResults writes a batch of results in the requested format.
// Plain mode prints one line per result, matching what the REPL shows.
func renderResults(w io.Writer, results []engine.Result, format string) error {
	switch format {
	case "json":
		return renderJSON(w, results)
	case "csv":
		return renderCSV(w, results)
	case "table":
		return renderTable(w, results)
	default:
		return renderPlain(w, results)
	}
}

func renderPlain(w io.Writer, results []engine.Result) error {
	for _, r := range results {
		if r.OK() {
			_, _ = fmt.Fprintln(w, r.Output)
		} else {
			_, _ = fmt.Fprintf(w, "error: %v\n", r.Err)
		}
	}
	return nil
}

func renderJSON(w io.Writer, results []engine.Result) error {
	outputs := make([]resultOutput, len(results))
	for i, r := range results {
		outputs[i] = toOutput(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outputs)
}

func renderCSV(w io.Writer, results []engine.Result) error {
	_, _ = fmt.Fprintln(w, "input,resolver,output,error")
	for _, r := range results {
		out := toOutput(r)
		fields := []string{out.Input, out.Resolver, out.Output, out.Error}
		for i, f := range fields {
			fields[i] = escapeCSV(f)
		}
		_, _ = fmt.Fprintln(w, strings.Join(fields, ","))
	}
	return nil
}

func renderTable(w io.Writer, results []engine.Result) error {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "(0 results)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Input", "Resolver", "Result"})

	for _, r := range results {
		result := r.Output
		if !r.OK() {
			result = "error: " + r.Err.Error()
		}
		t.AppendRow(table.Row{r.Input, r.Resolver, result})
	}

	t.Render()
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
