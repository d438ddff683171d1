package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/delaysim/internal/analysis"
	"github.com/san-kum/delaysim/internal/config"
	"github.com/san-kum/delaysim/internal/models"
	"github.com/san-kum/delaysim/internal/registry"
	"github.com/san-kum/delaysim/internal/solver"
	"github.com/san-kum/delaysim/internal/storage"
	"github.com/san-kum/delaysim/internal/tui"
	"github.com/san-kum/delaysim/internal/viz"
)

var (
	dataDir    string
	algorithm  string
	start      float64
	end        float64
	points     int
	tolerance  float64
	step       float64
	configFile string
	save       bool
	noPlot     bool
	component  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "delaysim",
		Short: "delay differential equation solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".delaysim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "solve a model and plot the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	runCmd.Flags().StringVar(&algorithm, "algorithm", "rk45", "stepping algorithm")
	runCmd.Flags().Float64Var(&start, "start", 0.0, "start time")
	runCmd.Flags().Float64Var(&end, "end", 50.0, "end time")
	runCmd.Flags().IntVar(&points, "points", 5000, "number of output points")
	runCmd.Flags().Float64Var(&tolerance, "tol", 1e-6, "error tolerance")
	runCmd.Flags().Float64Var(&step, "step", 0.01, "initial step size")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().BoolVar(&save, "save", false, "persist the run")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		RunE:  listModels,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list stepping algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range registry.New().Algorithms() {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "dominant period of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().IntVar(&component, "component", 0, "state component to analyze")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "solve with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&algorithm, "algorithm", "rk45", "stepping algorithm")
	liveCmd.Flags().Float64Var(&start, "start", 0.0, "start time")
	liveCmd.Flags().Float64Var(&end, "end", 50.0, "end time")
	liveCmd.Flags().IntVar(&points, "points", 5000, "number of output points")
	liveCmd.Flags().Float64Var(&tolerance, "tol", 1e-6, "error tolerance")

	rootCmd.AddCommand(runCmd, modelsCmd, algorithmsCmd, listCmd, plotCmd, exportCmd, spectrumCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig(model string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg.Algorithm = algorithm
		cfg.Start = start
		cfg.End = end
		cfg.Points = points
		cfg.Tolerance = tolerance
		cfg.InitialStep = step
	}
	cfg.Model = model
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	reg := registry.New()
	m, err := reg.Model(cfg.Model, cfg.Params)
	if err != nil {
		return err
	}

	tt := cfg.Times()
	begin := time.Now()
	yy, err := solver.Solve(models.Func(m), m.History, tt, cfg.SolverConfig())
	if err != nil {
		return err
	}
	elapsed := time.Since(begin)

	fmt.Printf("solved %s: %d points over [%.4g, %.4g] in %s\n\n",
		cfg.Model, len(tt), cfg.Start, cfg.End, elapsed.Round(time.Millisecond))

	if !noPlot {
		fmt.Print(viz.Plot(yy, nil))
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Model:     cfg.Model,
			Timestamp: time.Now(),
			Algorithm: cfg.Algorithm,
			Tolerance: cfg.Tolerance,
			Start:     cfg.Start,
			End:       cfg.End,
			Points:    cfg.Points,
		}, tt, yy)
		if err != nil {
			return err
		}
		fmt.Printf("saved run: %s\n", runID)
	}

	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	reg := registry.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tPARAMS")
	for _, name := range reg.Models() {
		m, err := reg.Model(name, nil)
		if err != nil {
			return err
		}
		params := "-"
		if cfgM, ok := m.(interface{ Params() map[string]float64 }); ok {
			params = ""
			for k, v := range cfgM.Params() {
				params += fmt.Sprintf("%s=%.4g ", k, v)
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, m.Dim(), params)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tRANGE\tPOINTS\tALGO")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%.4g, %.4g]\t%d\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Start,
			run.End,
			run.Points,
			run.Algorithm,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, states, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\nmodel: %s\nsamples: %d\n\n", meta.ID, meta.Model, len(states))
	fmt.Print(viz.Plot(states, nil))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, states, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}
	if len(times) < 4 {
		return fmt.Errorf("run %s has too few samples", args[0])
	}
	if component < 0 || component >= len(states[0]) {
		return fmt.Errorf("component %d out of range (dim %d)", component, len(states[0]))
	}

	dt := times[1] - times[0]
	period, err := analysis.DominantPeriod(viz.Component(states, component), dt)
	if err != nil {
		return err
	}

	fmt.Printf("component %d dominant period: %.4f\n", component, period)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	reg := registry.New()
	m, err := reg.Model(cfg.Model, cfg.Params)
	if err != nil {
		return err
	}

	return tui.Run(m, cfg.Times(), cfg.SolverConfig())
}
