package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordanro2/edgeslide/internal/config"
	"github.com/jordanro2/edgeslide/pkg/analysis"
	"github.com/jordanro2/edgeslide/pkg/mesh"
	"github.com/jordanro2/edgeslide/pkg/slide"
)

var (
	analyzeSelect []int
	analyzeAll    bool
	analyzeUnit   string
	analyzeConfig string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze the slide range of an edge loop",
	Long: `Show the directional slide range of every edge in the selected loop,
plus the aggregated loop-level range under each measurement method.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntSliceVarP(&analyzeSelect, "select", "s", nil, "Selected edge indices (comma separated)")
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all", false, "Select every edge of the mesh")
	analyzeCmd.Flags().StringVarP(&analyzeUnit, "unit", "u", "", "Unit label for displayed distances")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Tuning file (default edgeslide.yaml if present)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(analyzeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if !cmd.Flags().Changed("unit") {
		analyzeUnit = cfg.Unit
	}

	model, err := mesh.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	selection := resolveSelection(model, analyzeSelect, analyzeAll)
	if len(selection) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: please select an edge loop first (--select or --all)")
		os.Exit(1)
	}

	opts, err := cfg.SlideOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := printAnalysis(model, selection, opts, analyzeUnit); err != nil {
		if errors.Is(err, slide.ErrNoValidLoop) || errors.Is(err, slide.ErrNoSelection) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// printAnalysis runs the loop analysis and prints the per-edge and
// aggregated report. Shared with the watch command.
func printAnalysis(model *mesh.Model, selection []int, opts slide.Options, unit string) error {
	result, err := slide.Analyze(model, selection, opts)
	if err != nil {
		return err
	}

	fmt.Println("Edge Loop Analysis")
	fmt.Println("==================")
	if result.Repaired {
		fmt.Printf("Selection repaired into a %d-edge chain\n", len(result.Loop))
	}
	fmt.Printf("Loop edges: %d (%d slideable)\n", len(result.Loop), len(result.Ranges))
	fmt.Printf("Loop width: %s\n\n", analysis.FormatMeasurement(result.LoopWidth, unit))

	fmt.Printf("%-8s %-38s %-15s %-15s\n", "Edge", "Midpoint", "Positive", "Negative")
	fmt.Println("------------------------------------------------------------------------------")
	for _, r := range result.Ranges {
		fmt.Printf("%-8d %-38s %-15.6f %-15.6f\n",
			r.Edge,
			analysis.FormatVector(mesh.EdgeMidpoint(model, r.Edge)),
			r.Positive,
			r.Negative)
	}

	fmt.Println("\nAggregated slide range:")
	for _, method := range []slide.Method{slide.Average, slide.Minimum, slide.Maximum, slide.First} {
		d := slide.Aggregate(result.Ranges, method)
		marker := " "
		if method == opts.Method {
			marker = "*"
		}
		fmt.Printf("%s %-8s +%s / -%s\n", marker, method,
			analysis.FormatMeasurement(d.Positive, unit),
			analysis.FormatMeasurement(d.Negative, unit))
	}

	return nil
}
