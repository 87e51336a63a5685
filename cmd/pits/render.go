// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spetersoncode/pits-of-despair-sub006/sim"
)

// renderReport writes report to w in one of three presentations. All
// three consume the same sim.AggregateReport — there is exactly one
// aggregation path (sim.Aggregate) and three ways to present it.
func renderReport(w io.Writer, format, label string, report sim.AggregateReport) error {
	switch format {
	case "", "console":
		return renderConsole(w, label, report)
	case "json":
		return renderJSON(w, report)
	case "csv":
		return renderCSV(w, []namedReport{{label, report}})
	default:
		return fmt.Errorf("pits: unknown output format %q (want console, json, or csv)", format)
	}
}

type namedReport struct {
	Label  string
	Report sim.AggregateReport
}

// renderConsole writes a human-readable summary table to w.
func renderConsole(w io.Writer, label string, r sim.AggregateReport) error {
	_, err := fmt.Fprintf(w,
		"%s\n  iterations: %d\n  wins A: %d (%.1f%%)\n  wins B: %d (%.1f%%)\n  draws: %d\n  capped: %d\n  mean turns: %.1f  median turns: %.1f\n  mean damage A: %.1f  mean damage B: %.1f\n",
		label, r.Iterations,
		r.WinsA, r.WinRateA()*100,
		r.WinsB, r.WinRateB()*100,
		r.Draws, r.Capped,
		r.MeanTurns, r.MedianTurns,
		r.MeanDamageA, r.MeanDamageB,
	)
	return err
}

// renderJSON marshals r with the standard library encoder and writes it
// to w, one object per call.
func renderJSON(w io.Writer, r sim.AggregateReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// renderCSV writes one row per named report via encoding/csv.
func renderCSV(w io.Writer, reports []namedReport) error {
	cw := csv.NewWriter(w)
	header := []string{
		"label", "iterations", "winsA", "winsB", "draws", "capped",
		"meanTurns", "medianTurns", "meanDamageA", "meanDamageB",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, nr := range reports {
		r := nr.Report
		row := []string{
			nr.Label,
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.WinsA),
			strconv.Itoa(r.WinsB),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.Capped),
			strconv.FormatFloat(r.MeanTurns, 'f', 2, 64),
			strconv.FormatFloat(r.MedianTurns, 'f', 2, 64),
			strconv.FormatFloat(r.MeanDamageA, 'f', 2, 64),
			strconv.FormatFloat(r.MeanDamageB, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// renderMatrix writes a MatrixCell slice using the same three formats,
// one row/object per pairing.
func renderMatrix(w io.Writer, format string, cells []sim.MatrixCell) error {
	switch format {
	case "", "console":
		for _, c := range cells {
			if err := renderConsole(w, fmt.Sprintf("%s vs %s", c.A, c.B), c.Report); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cells)
	case "csv":
		named := make([]namedReport, len(cells))
		for i, c := range cells {
			named[i] = namedReport{Label: fmt.Sprintf("%s vs %s", c.A, c.B), Report: c.Report}
		}
		return renderCSV(w, named)
	default:
		return fmt.Errorf("pits: unknown output format %q (want console, json, or csv)", format)
	}
}

// renderVariations writes a VariationResult slice using the same three
// formats, one row/object per variation.
func renderVariations(w io.Writer, format string, results []sim.VariationResult) error {
	switch format {
	case "", "console":
		for _, v := range results {
			if err := renderConsole(w, v.Name, v.Report); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "csv":
		named := make([]namedReport, len(results))
		for i, v := range results {
			named[i] = namedReport{Label: v.Name, Report: v.Report}
		}
		return renderCSV(w, named)
	default:
		return fmt.Errorf("pits: unknown output format %q (want console, json, or csv)", format)
	}
}
