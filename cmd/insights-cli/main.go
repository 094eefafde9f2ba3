// Command insights-cli runs the dashboard pipeline offline: load a CSV or
// Excel file, apply filters, and print the summary metrics and the ranked
// top-N account table.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"go-insights-dashboard/internal/model"
	"go-insights-dashboard/internal/pipeline"
)

var (
	flagFile    string
	flagFilters []string
	flagTopN    int
	flagOut     string
)

var rootCmd = &cobra.Command{
	Use:   "insights-cli",
	Short: "Filter and rank opportunity data from a CSV or Excel file",
	Long: `insights-cli runs the same load -> project -> filter -> aggregate pipeline
as the API server against a local file and prints the results.

Filters take the form "Column=Value1,Value2"; repeat --filter for several
columns. Columns combine with AND, values within a column with OR.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "input file (.csv, .xlsx or .xls)")
	rootCmd.Flags().StringArrayVar(&flagFilters, "filter", nil, `filter selection, e.g. --filter "Stage=Closed Won"`)
	rootCmd.Flags().IntVarP(&flagTopN, "top", "n", 10, "number of ranked accounts to show")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the filtered rows to this CSV file")
	rootCmd.MarkFlagRequired("file")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(flagFile)
	if err != nil {
		return err
	}

	table, err := pipeline.LoadAndProject(data, flagFile)
	if err != nil {
		return err
	}
	fmt.Printf("📥 Loaded %s: %d rows, %d columns retained\n", flagFile, table.RowCount(), len(table.Columns))

	spec, err := parseFilters(flagFilters)
	if err != nil {
		return err
	}
	if spec.IsActive() {
		fmt.Printf("🔍 Filtering on %d column(s)\n", len(spec))
	}

	result, err := pipeline.Run(table, spec, flagTopN)
	if err != nil {
		return err
	}
	if result.Empty() {
		fmt.Println("📭 No data after applying filters.")
		return nil
	}

	fmt.Printf("💰 Total Revenue ($M): %.2f\n", result.Summary.TotalRevenue/1_000_000)
	fmt.Printf("📌 # Opportunities:    %d\n", result.Summary.OpportunityCount)
	fmt.Println()

	out := tablewriter.NewWriter(os.Stdout)
	out.SetHeader([]string{"Account", "Revenue ($M)", "Opportunities"})
	for _, g := range result.Groups.Groups {
		out.Append([]string{
			g.GroupValue,
			strconv.FormatFloat(g.RevenueSum/1_000_000, 'f', 2, 64),
			strconv.Itoa(g.DistinctCount),
		})
	}
	out.Render()

	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pipeline.WriteCSV(f, result.Filtered); err != nil {
			return err
		}
		fmt.Printf("💾 Wrote %d filtered rows to %s\n", result.Filtered.RowCount(), flagOut)
	}
	return nil
}

// parseFilters turns "Column=V1,V2" arguments into a FilterSpec.
func parseFilters(raw []string) (model.FilterSpec, error) {
	spec := model.FilterSpec{}
	for _, arg := range raw {
		col, values, ok := strings.Cut(arg, "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid filter %q, want \"Column=Value1,Value2\"", arg)
		}
		for _, v := range strings.Split(values, ",") {
			if v = strings.TrimSpace(v); v != "" {
				spec[col] = append(spec[col], v)
			}
		}
	}
	return spec, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}
