package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/san-kum/herofx/internal/analysis"
	"github.com/san-kum/herofx/internal/config"
	"github.com/san-kum/herofx/internal/export"
	"github.com/san-kum/herofx/internal/gui"
	"github.com/san-kum/herofx/internal/page"
	"github.com/san-kum/herofx/internal/particles"
	"github.com/san-kum/herofx/internal/storage"
	"github.com/san-kum/herofx/internal/surface"
	"github.com/san-kum/herofx/internal/typing"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logFile    string
	seed       int64
	frameRate  int

	// Headless rendering
	width   float64
	height  float64
	frames  int
	output  string
	braille bool
	cols    int
	rows    int
	from    string

	typeFor time.Duration
	runs    int
)

var errUnknownPreset = errors.New("unknown preset")

// main registers the commands and runs the landing page when no subcommand
// is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "herofx",
		Short: "animated landing page effects",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return page.Run(cfg, page.Options{})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".herofx", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logFile, "log", "", "write logs to this file")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	heroCmd := &cobra.Command{
		Use:   "hero",
		Short: "full-screen particle hero only",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return page.Run(cfg, page.Options{HeroOnly: true})
		},
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the hero in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	typeCmd := &cobra.Command{
		Use:   "type",
		Short: "print the typing headline loop",
		RunE:  runType,
	}
	typeCmd.Flags().DurationVar(&typeFor, "for", 0, "stop after this long (0 runs until interrupted)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render a frame to SVG",
		RunE:  exportFrame,
	}
	addHeadlessFlags(exportCmd)
	exportCmd.Flags().StringVarP(&output, "output", "o", "frame.svg", "output file (- for stdout)")
	exportCmd.Flags().BoolVar(&braille, "braille", false, "export the terminal rendering")
	exportCmd.Flags().IntVar(&cols, "cols", 80, "terminal columns (--braille)")
	exportCmd.Flags().IntVar(&rows, "rows", 24, "terminal rows (--braille)")
	exportCmd.Flags().StringVar(&from, "from", "", "start from a saved snapshot")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and save a snapshot",
		RunE:  saveSnapshot,
	}
	addHeadlessFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&from, "from", "", "continue from a saved snapshot")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		RunE:  listSnapshots,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "profile visible points and edges per frame",
		RunE:  showStats,
	}
	addHeadlessFlags(statsCmd)
	statsCmd.Flags().IntVar(&runs, "runs", 1, "profile this many consecutive seeds in parallel")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(heroCmd, windowCmd, typeCmd, exportCmd, snapshotCmd, listCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addHeadlessFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&width, "width", 1280, "surface width in px")
	cmd.Flags().Float64Var(&height, "height", 720, "surface height in px")
	cmd.Flags().IntVar(&frames, "frames", 120, "frames to render")
}

// setupLogging sends logs to --log, or nowhere: the terminal belongs to the
// page.
func setupLogging() error {
	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// loadConfig layers the config file, the preset and explicit flags over the
// defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if preset != "" && !config.Apply(cfg, preset) {
		return nil, fmt.Errorf("%w: %s (try: %v)", errUnknownPreset, preset, config.ListPresets())
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "file", configFile, "preset", preset, "seed", cfg.Seed)
	return cfg, nil
}

// headlessField builds a field drawing into a recorder, sized and seeded,
// or restored from a snapshot when --from is set.
func headlessField(cmd *cobra.Command) (*particles.Field, *surface.Recorder, *config.Config, error) {
	var (
		cfg *config.Config
		err error
		ps  []particles.Particle
	)
	w, h := width, height
	if from != "" {
		st := storage.New(dataDir)
		meta, err := st.Load(from)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg, err = st.LoadConfig(from); err != nil {
			return nil, nil, nil, err
		}
		if ps, err = st.LoadParticles(from); err != nil {
			return nil, nil, nil, err
		}
		w, h = meta.Width, meta.Height
	} else if cfg, err = loadConfig(cmd); err != nil {
		return nil, nil, nil, err
	}

	pc, err := cfg.ParticleConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	rec := surface.NewRecorder()
	f, err := particles.New(rec, pc, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, nil, nil, err
	}
	f.Resize(w, h)
	if ps != nil {
		f.Restore(ps)
	} else {
		f.Initialize()
	}
	return f, rec, cfg, nil
}

func runType(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tw, err := typing.New(cfg.Typing.Words, cfg.Typing.Timing)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if typeFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, typeFor)
		defer cancel()
	}

	err = tw.Run(ctx, typing.RealClock{}, func(text string) {
		fmt.Printf("\r\033[KEliminate %s▌", text)
	})
	fmt.Println()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func exportFrame(cmd *cobra.Command, args []string) error {
	f, rec, cfg, err := headlessField(cmd)
	if err != nil {
		return err
	}
	bg := page.GetTheme(cfg.Theme).BackgroundRGBA()

	var svg string
	if braille {
		canvas := surface.NewBraille(cols, rows)
		page.FitBraille(f, canvas, page.DefaultCellScale, from != "")
		for i := 0; i < frames; i++ {
			f.RenderFrame()
		}
		svg = export.BrailleToSVG(canvas, 4, bg)
	} else {
		for i := 0; i < frames; i++ {
			f.RenderFrame()
		}
		w, h := f.Size()
		svg = export.FrameToSVG(rec.LastFrame(), w, h, bg)
	}

	if output == "-" {
		_, err = fmt.Println(svg)
		return err
	}
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("frame %d written to %s\n", f.Frame(), output)
	return nil
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	f, rec, cfg, err := headlessField(cmd)
	if err != nil {
		return err
	}
	var last particles.FrameStats
	for i := 0; i < frames; i++ {
		last = f.RenderFrame()
	}

	w, h := f.Size()
	bg := page.GetTheme(cfg.Theme).BackgroundRGBA()
	st := storage.New(dataDir)
	id, err := st.Save(storage.Snapshot{
		Meta: storage.Metadata{
			Preset:  preset,
			Seed:    cfg.Seed,
			Width:   w,
			Height:  h,
			Frame:   f.Frame(),
			Visible: last.Visible,
			Edges:   last.Edges,
		},
		Config:    cfg,
		Particles: f.Particles(),
		SVG:       export.FrameToSVG(rec.LastFrame(), w, h, bg),
	})
	if err != nil {
		return err
	}
	fmt.Printf("snapshot saved: %s\n", id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tFRAME\tPARTICLES\tVISIBLE\tEDGES")

	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%.0fx%.0f\t%d\t%d\t%d\t%d\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Width,
			s.Height,
			s.Frame,
			s.Count,
			s.Visible,
			s.Edges,
		)
	}

	return w.Flush()
}

func showStats(cmd *cobra.Command, args []string) error {
	if runs > 1 {
		return showEnsembleStats(cmd)
	}
	f, _, _, err := headlessField(cmd)
	if err != nil {
		return err
	}
	report := analysis.Profile(f, frames)

	fmt.Println(report.Plot(70, 12))
	fmt.Println()
	fmt.Print(report.String())
	return nil
}

func showEnsembleStats(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pc, err := cfg.ParticleConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := analysis.NewEnsemble(pc, width, height, runs, cfg.Seed).Run(ctx, frames)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tVISIBLE\tEDGES\tMAX")
	for i, r := range reports {
		fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%d\n", cfg.Seed+int64(i), r.VisibleMean, r.EdgesMean, r.EdgesMax)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(analysis.Combine(reports).String())
	return nil
}
