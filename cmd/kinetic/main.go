package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/kinetic/internal/config"
	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/solver"
	"github.com/san-kum/kinetic/internal/trace"
	"github.com/san-kum/kinetic/internal/tui"
	"github.com/san-kum/kinetic/internal/vector"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	stiffness float64
	damping   float64
	critical  bool
	friction  float64
	posX      float64
	posY      float64
	velX      float64
	velY      float64
	frameRate int
	timeScale float64
	duration  float64
	saveRun   bool
	realTime  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kinetic",
		Short: "single-object physics simulation engine",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".kinetic", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log lifecycle and frames")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario headless and plot the trace",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the recorded trace")
	runCmd.Flags().BoolVar(&realTime, "realtime", false, "drive frames from wall-clock timers instead of synthetic timestamps")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a scenario in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, name, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, name)
		},
	}
	addScenarioFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTIFFNESS\tDAMPING\tFRICTION\tDURATION")
			for name, cfg := range config.Presets {
				dampingCol := fmt.Sprintf("%.1f", cfg.Damping)
				if cfg.CriticallyDamped {
					dampingCol = "critical"
				}
				fmt.Fprintf(w, "%s\t%.1f\t%s\t%.1f\t%.1fs\n",
					name, cfg.Stiffness, dampingCol, cfg.Friction, cfg.MaxDuration)
			}
			w.Flush()
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := trace.NewStore(dataDir).List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tFRAMES\tSETTLED\tWHEN")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n",
					r.ID, r.Scenario, r.Frames, r.Settled, r.Timestamp.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, runsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "built-in scenario name")
	cmd.Flags().Float64Var(&stiffness, "k", def.Stiffness, "spring stiffness")
	cmd.Flags().Float64Var(&damping, "b", 0, "damping coefficient")
	cmd.Flags().BoolVar(&critical, "critical", def.CriticallyDamped, "critically damped spring")
	cmd.Flags().Float64Var(&friction, "friction", 0, "friction coefficient")
	cmd.Flags().Float64Var(&posX, "x", def.Position[0], "initial x position")
	cmd.Flags().Float64Var(&posY, "y", def.Position[1], "initial y position")
	cmd.Flags().Float64Var(&velX, "vx", 0, "initial x velocity")
	cmd.Flags().Float64Var(&velY, "vy", 0, "initial y velocity")
	cmd.Flags().IntVar(&frameRate, "fps", def.FrameRate, "frames per second")
	cmd.Flags().Float64Var(&timeScale, "timescale", def.TimeScale, "slow-motion multiplier")
	cmd.Flags().Float64Var(&duration, "time", def.MaxDuration, "maximum duration in seconds")
}

// resolveConfig picks the scenario source: an explicit file, a preset, or a
// config assembled from flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		return cfg, configFile, err
	}
	if preset != "" {
		cfg, ok := config.Presets[preset]
		if !ok {
			return nil, "", fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, preset, nil
	}

	cfg := &config.Config{
		Stiffness:        stiffness,
		Damping:          damping,
		CriticallyDamped: critical,
		Friction:         friction,
		Anchor:           []float64{0, 0},
		Position:         []float64{posX, posY},
		Velocity:         []float64{velX, velY},
		FrameRate:        frameRate,
		TimeScale:        timeScale,
		MaxDuration:      duration,
	}
	return cfg, "custom", cfg.Validate()
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
	}

	var (
		eng *engine.Engine
		rec *trace.Recorder
	)
	if realTime {
		eng, rec, err = runRealtime(cfg, log)
	} else {
		eng, rec, err = runHeadless(cfg, log)
	}
	if err != nil {
		return err
	}

	samples := rec.Samples()
	if len(samples) > 1 {
		fmt.Println(asciigraph.Plot(rec.Component(0),
			asciigraph.Height(14),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("%s · position x", name)),
		))
	}

	final := eng.State()
	fmt.Printf("\nframes: %d  settled: %t  |x|: %.4f  |v|: %.4f\n",
		len(samples), rec.Settled(), final.X.Magnitude(), final.V.Magnitude())

	if saveRun {
		id, err := trace.NewStore(dataDir).Save(name, cfg.FrameRate, cfg.TimeScale, rec)
		if err != nil {
			return err
		}
		log.Info("run saved", zap.String("id", id))
		fmt.Printf("saved: %s\n", id)
	}
	return nil
}

// buildEngine assembles an engine for the scenario on the given scheduler,
// with a recorder and a log listener attached.
func buildEngine(cfg *config.Config, log *zap.Logger, sched engine.FrameScheduler) (*engine.Engine, *trace.Recorder, error) {
	eng, err := engine.New(solver.NewRK4(), sched)
	if err != nil {
		return nil, nil, err
	}
	if err := eng.SetTimeScale(cfg.TimeScale); err != nil {
		return nil, nil, err
	}

	for _, f := range cfg.BuildForces() {
		eng.AddForce(f)
	}
	eng.SetState(cfg.InitialState())

	rec := trace.NewRecorder()
	eng.AddListener(rec)
	eng.AddListener(trace.NewLogListener(log, cfg.FrameRate))
	return eng, rec, nil
}

// runHeadless drives the engine with synthetic frame timestamps so headless
// runs are deterministic and faster than real time.
func runHeadless(cfg *config.Config, log *zap.Logger) (*engine.Engine, *trace.Recorder, error) {
	sched := engine.NewManualScheduler()
	eng, rec, err := buildEngine(cfg, log, sched)
	if err != nil {
		return nil, nil, err
	}

	eng.Start()
	frameTime := 0.0
	maxFrames := int(cfg.MaxDuration*float64(cfg.FrameRate)*cfg.TimeScale) + 1
	for i := 0; i < maxFrames && sched.Tick(frameTime); i++ {
		frameTime += 1.0 / float64(cfg.FrameRate)
	}
	eng.Stop()
	return eng, rec, nil
}

// runRealtime drives the engine from wall-clock timers and blocks until the
// run settles or hits the configured duration. The duration cap runs inside
// the frame callback so the engine is only ever touched from the scheduler's
// goroutine.
func runRealtime(cfg *config.Config, log *zap.Logger) (*engine.Engine, *trace.Recorder, error) {
	sched := engine.NewTickerScheduler(cfg.FrameRate)
	eng, rec, err := buildEngine(cfg, log, sched)
	if err != nil {
		return nil, nil, err
	}

	done := make(chan struct{})
	frames := 0
	maxFrames := int(cfg.MaxDuration*float64(cfg.FrameRate)*cfg.TimeScale) + 1
	eng.AddListener(&engine.ListenerFuncs{
		Update: func(x, v *vector.Vector) {
			frames++
			if frames >= maxFrames {
				eng.Stop()
			}
		},
		Stop: func() { close(done) },
	})

	eng.Start()
	<-done
	return eng, rec, nil
}
