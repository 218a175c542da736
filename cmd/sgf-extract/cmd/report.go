package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mipli/sgf-parser/sgf"
)

// Diagnostic describes one unrecognized or rejected property.
type Diagnostic struct {
	// Node index in traversal order (0-based).
	Node int `json:"node"`

	Ident  string   `json:"ident"`
	Values []string `json:"values,omitempty"`

	// Only set for invalid properties.
	Reason string `json:"reason,omitempty"`
}

// Report summarizes one parsed file.
type Report struct {
	File     string       `json:"file"`
	Roots    int          `json:"roots"`
	Nodes    int          `json:"nodes"`
	Branches int          `json:"branches"`
	Unknown  []Diagnostic `json:"unknown,omitempty"`
	Invalid  []Diagnostic `json:"invalid,omitempty"`
}

// NewReport builds a report from a parsed tree. Diagnostics come out in
// traversal order, matching GetUnknownNodes and GetInvalidNodes.
func NewReport(file string, tree *sgf.GameTree) *Report {
	report := &Report{
		File:  file,
		Roots: len(tree.Roots),
	}

	index := 0
	tree.Traverse(func(n *sgf.Node) bool {
		if n.IsBranch() {
			report.Branches++
		}
		for i := range n.Tokens {
			token := &n.Tokens[i]
			switch {
			case token.IsUnknown():
				report.Unknown = append(report.Unknown, Diagnostic{
					Node:   index,
					Ident:  token.Ident,
					Values: token.Raw,
				})
			case token.IsInvalid():
				report.Invalid = append(report.Invalid, Diagnostic{
					Node:   index,
					Ident:  token.Ident,
					Values: token.Raw,
					Reason: token.Reason,
				})
			}
		}
		report.Nodes++
		index++
		return true
	})

	return report
}

// TextOptions selects which diagnostics the text rendering includes.
type TextOptions struct {
	Unknown bool
	Invalid bool
}

// WriteText renders the report for humans.
func (r *Report) WriteText(w io.Writer, opts TextOptions) error {
	_, err := fmt.Fprintf(w, "%s: %d nodes, %d branches\n", r.File, r.Nodes, r.Branches)
	if err != nil {
		return err
	}

	if opts.Unknown {
		for _, d := range r.Unknown {
			if _, err := fmt.Fprintf(w, "  node %d: unknown property %s%s\n",
				d.Node, d.Ident, bracketed(d.Values)); err != nil {
				return err
			}
		}
	}
	if opts.Invalid {
		for _, d := range r.Invalid {
			if _, err := fmt.Fprintf(w, "  node %d: invalid property %s%s: %s\n",
				d.Node, d.Ident, bracketed(d.Values), d.Reason); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON renders the report as one indented JSON object.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// bracketed reconstructs the value list in SGF notation for messages.
func bracketed(values []string) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteByte('[')
		sb.WriteString(v)
		sb.WriteByte(']')
	}
	return sb.String()
}
