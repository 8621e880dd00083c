package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordanro2/edgeslide/internal/config"
	"github.com/jordanro2/edgeslide/pkg/mesh"
	"github.com/jordanro2/edgeslide/pkg/slide"
	"github.com/jordanro2/edgeslide/pkg/watcher"
)

var (
	watchSelect   []int
	watchAll      bool
	watchUnit     string
	watchConfig   string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-analyze an edge loop whenever the mesh file changes",
	Long: `Run the loop analysis, then keep watching the mesh file and print a
fresh report after every save. Useful while adjusting topology in the
modeling application with the target loop in mind.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntSliceVarP(&watchSelect, "select", "s", nil, "Selected edge indices (comma separated)")
	watchCmd.Flags().BoolVar(&watchAll, "all", false, "Select every edge of the mesh")
	watchCmd.Flags().StringVarP(&watchUnit, "unit", "u", "", "Unit label for displayed distances")
	watchCmd.Flags().StringVarP(&watchConfig, "config", "c", "", "Tuning file (default edgeslide.yaml if present)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Settle time after a file change")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(watchConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if !cmd.Flags().Changed("unit") {
		watchUnit = cfg.Unit
	}

	opts, err := cfg.SlideOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	analyzeOnce := func() {
		model, err := mesh.Load(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
			return
		}
		selection := resolveSelection(model, watchSelect, watchAll)
		if err := printAnalysis(model, selection, opts, watchUnit); err != nil {
			if errors.Is(err, slide.ErrNoSelection) || errors.Is(err, slide.ErrNoValidLoop) {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}

	analyzeOnce()

	fw, err := watcher.New(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch(filename, func() {
		fmt.Printf("\n%s changed, re-analyzing...\n\n", filename)
		analyzeOnce()
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nWatching %s (Ctrl+C to stop)\n", filename)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
