// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

var outputFormats = []string{outputTable, outputJSON, outputYAML}

// column selects an attribute for table output.
type column struct {
	header    string
	attribute string
}

func validateOutput(format string) error {
	for _, f := range outputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q, must be one of %v", format, outputFormats)
}

// printResults writes results in format. Table output has an ID column followed by columns.
func printResults(w io.Writer, format string, columns []column, results []provider.Result) error {
	switch format {
	case outputJSON:
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err

	case outputYAML:
		b, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err

	default:
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		headers := []string{"ID"}
		for _, c := range columns {
			headers = append(headers, c.header)
		}
		fmt.Fprintln(tw, strings.Join(headers, "\t"))

		for _, r := range results {
			row := []string{r.ID}
			for _, c := range columns {
				v, _ := r.Get(c.attribute)
				row = append(row, v.String())
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	}
}

// printResult writes a single result in format.
func printResult(w io.Writer, format string, columns []column, result *provider.Result) error {
	if format == outputTable {
		return printResults(w, format, columns, []provider.Result{*result})
	}

	var (
		b   []byte
		err error
	)
	if format == outputJSON {
		b, err = json.MarshalIndent(result, "", "  ")
		b = append(b, '\n')
	} else {
		b, err = yaml.Marshal(result)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
