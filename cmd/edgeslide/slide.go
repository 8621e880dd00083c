package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordanro2/edgeslide/internal/config"
	"github.com/jordanro2/edgeslide/pkg/analysis"
	"github.com/jordanro2/edgeslide/pkg/mesh"
	"github.com/jordanro2/edgeslide/pkg/slide"
	"github.com/jordanro2/edgeslide/pkg/transform"
)

var (
	slideSelect   []int
	slideAll      bool
	slideDistance float64
	slideEven     bool
	slideClamp    bool
	slideFlipped  bool
	slideMethod   string
	slideUnit     string
	slideConfig   string
	slideOutput   string
)

var slideCmd = &cobra.Command{
	Use:   "slide [file]",
	Short: "Slide an edge loop by an exact distance",
	Long: `Analyze the selected edge loop, convert the given distance into the
factor expected by the native edge slide transform, and emit the
transform invocation for the host.`,
	Args: cobra.ExactArgs(1),
	Run:  runSlide,
}

func init() {
	rootCmd.AddCommand(slideCmd)

	slideCmd.Flags().IntSliceVarP(&slideSelect, "select", "s", nil, "Selected edge indices (comma separated)")
	slideCmd.Flags().BoolVar(&slideAll, "all", false, "Select every edge of the mesh")
	slideCmd.Flags().Float64VarP(&slideDistance, "distance", "d", config.DefaultDistance, "Distance to slide (positive or negative)")
	slideCmd.Flags().BoolVar(&slideEven, "even", false, "Make the edge loop slide evenly")
	slideCmd.Flags().BoolVar(&slideClamp, "clamp", true, "Clamp the factor within the edge boundaries")
	slideCmd.Flags().BoolVar(&slideFlipped, "flipped", false, "Flip the slide direction")
	slideCmd.Flags().StringVarP(&slideMethod, "method", "m", config.DefaultMethod, "How to measure the slide distance (average, minimum, maximum, first)")
	slideCmd.Flags().StringVarP(&slideUnit, "unit", "u", "", "Unit label for displayed distances")
	slideCmd.Flags().StringVarP(&slideConfig, "config", "c", "", "Tuning file (default edgeslide.yaml if present)")
	slideCmd.Flags().StringVarP(&slideOutput, "output", "o", "", "Write the transform script to a file instead of stdout")
}

func runSlide(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(slideConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyConfigDefaults(cmd, cfg)

	model, err := mesh.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	selection := resolveSelection(model, slideSelect, slideAll)
	if len(selection) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: please select an edge loop first (--select or --all)")
		os.Exit(1)
	}

	opts, err := cfg.SlideOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("method") {
		if opts.Method, err = slide.ParseMethod(slideMethod); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	result, err := slide.Analyze(model, selection, opts)
	if err != nil {
		if errors.Is(err, slide.ErrNoSelection) || errors.Is(err, slide.ErrNoValidLoop) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	factor := slide.Resolve(result.Distance, slideDistance, slideClamp)

	if result.Repaired {
		fmt.Printf("Selection repaired into a %d-edge chain\n", len(result.Loop))
	}
	fmt.Printf("Loop width: %s\n", analysis.FormatMeasurement(result.LoopWidth, slideUnit))
	fmt.Printf("Slide range: +%s / -%s\n",
		analysis.FormatMeasurement(result.Distance.Positive, slideUnit),
		analysis.FormatMeasurement(result.Distance.Negative, slideUnit))
	fmt.Printf("Sliding %.4f %s | Factor: %.4f\n", math.Abs(slideDistance), unitLabel(slideUnit), factor)

	out := os.Stdout
	if slideOutput != "" {
		file, err := os.Create(slideOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	slider := transform.NewScript(out)
	if err := slider.Slide(transform.NewParams(factor, slideEven, slideFlipped, slideClamp)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: edge slide failed: %v\n", err)
		os.Exit(1)
	}
}

// applyConfigDefaults fills flag values from the tuning file for flags
// the user did not set explicitly
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("distance") {
		slideDistance = cfg.Distance
	}
	if !cmd.Flags().Changed("even") {
		slideEven = cfg.UseEven
	}
	if !cmd.Flags().Changed("clamp") {
		slideClamp = cfg.UseClamp
	}
	if !cmd.Flags().Changed("flipped") {
		slideFlipped = cfg.Flipped
	}
	if !cmd.Flags().Changed("unit") {
		slideUnit = cfg.Unit
	}
}

// unitLabel returns the label used in the sliding report line
func unitLabel(unit string) string {
	if unit == "" {
		return "units"
	}
	return unit
}
