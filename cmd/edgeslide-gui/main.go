package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/jordanro2/edgeslide/internal/config"
	"github.com/jordanro2/edgeslide/pkg/analysis"
	"github.com/jordanro2/edgeslide/pkg/mesh"
	"github.com/jordanro2/edgeslide/pkg/slide"
	"github.com/jordanro2/edgeslide/pkg/transform"
)

type App struct {
	window fyne.Window
	model  *mesh.Model
	cfg    *config.Config

	selectionEntry *widget.Entry
	distanceEntry  *widget.Entry
	evenCheck      *widget.Check
	clampCheck     *widget.Check
	flippedCheck   *widget.Check
	methodSelect   *widget.Select

	loopWidthLabel *widget.Label
	rangeLabel     *widget.Label
	factorLabel    *widget.Label
	scriptLabel    *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("Edge Slide by Distance")

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	appInstance := &App{
		window: w,
		cfg:    cfg,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(500, 700))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Edge Slide by Distance")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Open an OBJ or STL mesh to analyze an edge loop")

	openButton := widget.NewButton("Open Mesh File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	model, err := mesh.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load mesh: %w", err), a.window)
		return
	}

	a.model = model
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	// Input widgets, mirroring the property dialog of the original addon
	a.selectionEntry = widget.NewEntry()
	a.selectionEntry.SetPlaceHolder("Edge indices, e.g. 4,5,6,7 (or 'all')")

	a.distanceEntry = widget.NewEntry()
	a.distanceEntry.SetText(strconv.FormatFloat(a.cfg.Distance, 'g', -1, 64))

	a.evenCheck = widget.NewCheck("Even", nil)
	a.evenCheck.SetChecked(a.cfg.UseEven)

	a.clampCheck = widget.NewCheck("Clamp", nil)
	a.clampCheck.SetChecked(a.cfg.UseClamp)

	a.flippedCheck = widget.NewCheck("Flipped", nil)
	a.flippedCheck.SetChecked(a.cfg.Flipped)

	a.methodSelect = widget.NewSelect([]string{"average", "minimum", "maximum", "first"}, nil)
	a.methodSelect.SetSelected(a.cfg.Method)

	computeButton := widget.NewButton("Compute Slide Factor", func() {
		a.compute()
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	// Result labels
	a.loopWidthLabel = widget.NewLabel("Loop width: -")
	a.rangeLabel = widget.NewLabel("Slide range: -")
	a.factorLabel = widget.NewLabel("Factor: -")
	a.factorLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.scriptLabel = widget.NewLabel("")
	a.scriptLabel.Wrapping = fyne.TextWrapWord

	result := analysis.AnalyzeMesh(a.model)
	modelInfo := fmt.Sprintf(
		"Model: %s\nVertices: %d\nEdges: %d\nFaces: %d (%d quads, %d triangles, %d n-gons)\nSlideable edges: %d",
		a.model.Name,
		result.VertexCount,
		result.EdgeCount,
		result.FaceCount,
		result.QuadFaces,
		result.TriangleFaces,
		result.NgonFaces,
		result.InteriorEdges,
	)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Enter the edge loop indices (see 'edgeslide analyze')\n" +
			"• Enter the exact distance to slide\n" +
			"• Positive = one direction, negative = opposite\n" +
			"• Paste the generated call into the host's Python console",
	)
	instructions.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		widget.NewLabel(modelInfo),
		widget.NewSeparator(),
		widget.NewLabel("Edge Loop:"),
		a.selectionEntry,
		widget.NewLabel("Distance:"),
		a.distanceEntry,
		container.NewHBox(a.evenCheck, a.clampCheck, a.flippedCheck),
		widget.NewLabel("Measure:"),
		a.methodSelect,
		computeButton,
		widget.NewSeparator(),
		a.loopWidthLabel,
		a.rangeLabel,
		a.factorLabel,
		a.scriptLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	a.window.SetContent(container.NewVScroll(content))
}

func (a *App) compute() {
	selection, err := a.parseSelection()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	distance, err := strconv.ParseFloat(strings.TrimSpace(a.distanceEntry.Text), 64)
	if err != nil {
		dialog.ShowError(fmt.Errorf("invalid distance: %w", err), a.window)
		return
	}

	opts, err := a.cfg.SlideOptions()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if opts.Method, err = slide.ParseMethod(a.methodSelect.Selected); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	result, err := slide.Analyze(a.model, selection, opts)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	factor := slide.Resolve(result.Distance, distance, a.clampCheck.Checked)

	unit := a.cfg.Unit
	a.loopWidthLabel.SetText(fmt.Sprintf("Loop width: %s", analysis.FormatMeasurement(result.LoopWidth, unit)))
	a.rangeLabel.SetText(fmt.Sprintf("Slide range: +%s / -%s",
		analysis.FormatMeasurement(result.Distance.Positive, unit),
		analysis.FormatMeasurement(result.Distance.Negative, unit)))
	a.factorLabel.SetText(fmt.Sprintf("Sliding %.4f | Factor: %.4f", math.Abs(distance), factor))

	var script strings.Builder
	slider := transform.NewScript(&script)
	if err := slider.Slide(transform.NewParams(factor, a.evenCheck.Checked, a.flippedCheck.Checked, a.clampCheck.Checked)); err != nil {
		dialog.ShowError(fmt.Errorf("edge slide failed: %w", err), a.window)
		return
	}
	a.scriptLabel.SetText(script.String())
}

// parseSelection converts the selection entry into edge indices
func (a *App) parseSelection() ([]int, error) {
	text := strings.TrimSpace(a.selectionEntry.Text)
	if text == "" {
		return nil, fmt.Errorf("please select an edge loop first")
	}
	if strings.EqualFold(text, "all") {
		return a.model.AllEdges(), nil
	}

	var selection []int
	for _, part := range strings.Split(text, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid edge index %q: %w", part, err)
		}
		if idx < 0 || idx >= a.model.EdgeCount() {
			return nil, fmt.Errorf("edge index %d out of range (have %d edges)", idx, a.model.EdgeCount())
		}
		selection = append(selection, idx)
	}
	return selection, nil
}
