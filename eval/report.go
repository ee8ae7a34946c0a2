package eval

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Report is the serializable summary of a Result.
type Report struct {
	Input    string   `json:"input" yaml:"input"`
	Output   string   `json:"output" yaml:"output"`
	Free     []string `json:"free" yaml:"free"`
	Term     string   `json:"term" yaml:"term"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Steps    int      `json:"steps" yaml:"steps"`
	Outcome  string   `json:"outcome" yaml:"outcome"`
}

func (r *Result) Report() Report {
	free := r.Free
	if free == nil {
		free = []string{}
	}
	return Report{
		Input:    r.Input.String(),
		Output:   r.Output.String(),
		Free:     free,
		Term:     r.Normal.Term.String(),
		Strategy: r.Strategy,
		Steps:    r.Normal.Steps,
		Outcome:  r.Normal.Outcome.String(),
	}
}

// Write prints r to w in the given format: text is the bare output
// expression, json and yaml print the full Report.
func Write(w io.Writer, r *Result, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, r.Output)
		return err
	case "json":
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(r.Report(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.Report()); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
