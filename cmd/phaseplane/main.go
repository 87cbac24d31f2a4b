package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/phaseplane/internal/config"
	"github.com/san-kum/phaseplane/internal/eigen"
	"github.com/san-kum/phaseplane/internal/export"
	"github.com/san-kum/phaseplane/internal/flow"
	"github.com/san-kum/phaseplane/internal/orbit"
	"github.com/san-kum/phaseplane/internal/plane"
	"github.com/san-kum/phaseplane/internal/store"
	"github.com/san-kum/phaseplane/internal/tui"
	"github.com/san-kum/phaseplane/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	ma, mb, mc, md float64
	px, py         float64
	steps          int
	stepSize       float64
	stepperName    string
	backward       bool
	oneWay         bool

	grid     int
	span     float64
	width    int
	height   int
	themeOpt string

	jsonOut bool
	csvOut  bool
	plotOut bool
	svgPath string
	saveRun bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phaseplane",
		Short: "phase portraits of planar linear systems v' = Mv",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".phaseplane", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named example system")
	rootCmd.PersistentFlags().Float64Var(&ma, "a", 0, "matrix entry a (top-left)")
	rootCmd.PersistentFlags().Float64Var(&mb, "b", -2, "matrix entry b (top-right)")
	rootCmd.PersistentFlags().Float64Var(&mc, "c", 2, "matrix entry c (bottom-left)")
	rootCmd.PersistentFlags().Float64Var(&md, "d", 0, "matrix entry d (bottom-right)")

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "classify the equilibrium at the origin",
		RunE:  runClassify,
	}
	classifyCmd.Flags().BoolVar(&jsonOut, "json", false, "json output")

	flowCmd := &cobra.Command{
		Use:   "flow",
		Short: "integrate the flow line through a point",
		RunE:  runFlow,
	}
	flowCmd.Flags().Float64Var(&px, "x", 1, "initial x")
	flowCmd.Flags().Float64Var(&py, "y", 0, "initial y")
	flowCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "steps per direction")
	flowCmd.Flags().Float64Var(&stepSize, "dt", config.DefaultStepSize, "step size")
	flowCmd.Flags().StringVar(&stepperName, "stepper", "rk4", "stepper (rk4, euler)")
	flowCmd.Flags().BoolVar(&oneWay, "one-way", false, "integrate a single time direction only")
	flowCmd.Flags().BoolVar(&backward, "backward", false, "integrate backward (with --one-way)")
	flowCmd.Flags().BoolVar(&jsonOut, "json", false, "json output")
	flowCmd.Flags().BoolVar(&csvOut, "csv", false, "csv output")
	flowCmd.Flags().BoolVar(&plotOut, "plot", false, "plot x(t) and y(t)")

	portraitCmd := &cobra.Command{
		Use:   "portrait",
		Short: "render a grid-seeded phase portrait",
		RunE:  runPortrait,
	}
	portraitCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "steps per direction")
	portraitCmd.Flags().Float64Var(&stepSize, "dt", config.DefaultStepSize, "step size")
	portraitCmd.Flags().IntVar(&grid, "grid", config.DefaultGrid, "seeds per axis")
	portraitCmd.Flags().Float64Var(&span, "span", config.DefaultSpan, "viewport half-width")
	portraitCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width (chars)")
	portraitCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height (chars)")
	portraitCmd.Flags().StringVar(&themeOpt, "theme", "neon", "color theme")
	portraitCmd.Flags().StringVar(&svgPath, "svg", "", "also write the portrait to an SVG file")
	portraitCmd.Flags().BoolVar(&saveRun, "save", false, "save the session to the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive matrix explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named example systems",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\ta\tb\tc\td")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n",
					name, p.Matrix.A, p.Matrix.B, p.Matrix.C, p.Matrix.D)
			}
			w.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := store.New(dataDir).List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "id\ttimestamp\tclassification\tstability\ttrajectories")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					s.ID, s.Timestamp.Format("2006-01-02 15:04:05"),
					s.Classification, s.Stability, s.Trajectories)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(classifyCmd, flowCmd, portraitCmd, liveCmd, presetsCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: defaults, then config file, then
// preset, then the matrix flags when given explicitly.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (see `phaseplane presets`)", preset)
		}
		cfg.Matrix = p.Matrix
	}
	return cfg, nil
}

// matrix resolves the system matrix for a command invocation.
func matrix(cmd *cobra.Command) (plane.Mat2, error) {
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return plane.Mat2{}, fmt.Errorf("unknown preset: %s (see `phaseplane presets`)", preset)
		}
		return p.Matrix.Mat2(), nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return plane.Mat2{}, err
		}
		return cfg.Matrix.Mat2(), nil
	}
	return plane.Mat2{A: ma, B: mb, C: mc, D: md}, nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	m, err := matrix(cmd)
	if err != nil {
		return err
	}

	a := eigen.Classify(m)

	if jsonOut {
		return export.WriteAnalysisJSON(os.Stdout, a)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "matrix\t[%g %g; %g %g]\n", m.A, m.B, m.C, m.D)
	fmt.Fprintf(w, "trace\t%g\n", a.Trace)
	fmt.Fprintf(w, "determinant\t%g\n", a.Det)
	fmt.Fprintf(w, "discriminant\t%g\n", a.Disc)
	fmt.Fprintf(w, "eigenvalues\t%s, %s\n", fmtComplex(a.Values[0]), fmtComplex(a.Values[1]))
	if a.Vectors != nil {
		fmt.Fprintf(w, "eigenvectors\t(%.6f, %.6f), (%.6f, %.6f)\n",
			a.Vectors[0].X.Re, a.Vectors[0].Y.Re,
			a.Vectors[1].X.Re, a.Vectors[1].Y.Re)
	} else {
		fmt.Fprintf(w, "eigenvectors\t(complex pair, no real eigenlines)\n")
	}
	fmt.Fprintf(w, "classification\t%s\n", a.Class)
	fmt.Fprintf(w, "stability\t%s\n", a.Stab)
	return w.Flush()
}

func runFlow(cmd *cobra.Command, args []string) error {
	m, err := matrix(cmd)
	if err != nil {
		return err
	}
	initial := plane.Vec2{X: px, Y: py}

	var points []plane.Vec2
	if oneWay {
		points = flow.IntegrateWith(flow.ByName(stepperName), m, initial, steps, stepSize, !backward)
	} else {
		points = orbit.FlowLine(m, initial, steps, stepSize)
	}

	traj := orbit.Trajectory{ID: "traj_0", Initial: initial, Points: points, Color: orbit.Palette[0]}

	switch {
	case jsonOut:
		return export.WriteTrajectoryJSON(os.Stdout, traj)
	case csvOut:
		return export.WriteTrajectoriesCSV(os.Stdout, []orbit.Trajectory{traj})
	case plotOut:
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.X
			ys[i] = p.Y
		}
		fmt.Println(asciigraph.PlotMany([][]float64{xs, ys},
			asciigraph.Height(18),
			asciigraph.Width(80),
			asciigraph.Caption("x and y along the flow line"),
			asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta)))
		return nil
	}

	fmt.Printf("flow line through (%g, %g): %d points\n", px, py, len(points))
	fmt.Printf("start (%.6f, %.6f)  end (%.6f, %.6f)\n",
		points[0].X, points[0].Y,
		points[len(points)-1].X, points[len(points)-1].Y)
	return nil
}

func runPortrait(cmd *cobra.Command, args []string) error {
	m, err := matrix(cmd)
	if err != nil {
		return err
	}

	p := orbit.NewPortrait(m, steps, stepSize)
	p.SeedGrid(grid, span)
	a := p.Analysis()

	plot := viz.NewPlot(width, height, span)
	plot.Axes()
	plot.Eigenlines(a)
	for _, t := range p.Trajectories() {
		plot.Trajectory(t)
	}
	for _, t := range p.Trajectories() {
		plot.Mark(t.Initial)
	}

	fmt.Print(plot.String())
	fmt.Printf("%s — %s\n", a.Class, a.Stab)

	if svgPath != "" {
		theme := viz.GetTheme(themeOpt)
		svg := export.CanvasToSVG(plot.Canvas(), 4, string(theme.Primary), "#0a0a0a")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(p, steps, stepSize)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", id)
	}
	return nil
}

func fmtComplex(c plane.Complex) string {
	if c.Im == 0 {
		return fmt.Sprintf("%g", c.Re)
	}
	return fmt.Sprintf("%g%+gi", c.Re, c.Im)
}
