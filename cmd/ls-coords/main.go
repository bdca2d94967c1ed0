// Command ls-coords converts between ecliptical and equatorial sky coordinates.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/litescript/ls-coords/internal/astro"
	"github.com/litescript/ls-coords/internal/config"
	"github.com/litescript/ls-coords/internal/convert"
	"github.com/litescript/ls-coords/internal/export"
	"github.com/litescript/ls-coords/internal/logging"
	"github.com/litescript/ls-coords/internal/obliquity"
	"github.com/litescript/ls-coords/internal/ui"
	"github.com/litescript/ls-coords/internal/version"
)

const usage = `Usage: ls-coords [command] [flags]

Commands:
  ecl2eq     ecliptical → equatorial (default)
  eq2ecl     equatorial → ecliptical
  geo        normalize and print a geographic site
  obliquity  print the obliquity of the ecliptic
  sun        position of the Sun at a date
  stars      ecliptical positions of cataloged stars
  tui        interactive converter (default on a terminal)
  version    print the version

Run 'ls-coords <command> -h' for command flags.
`

func main() {
	// A missing .env is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	// Create context with cancellation on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTTY:  term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := a.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	isTTY  bool
}

// options are the flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	equinox    string
	obliquity  float64
	date       string
	json       bool
	notation   string
}

func (o *options) register(flags *flag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "Config file (default ./ls-coords.yaml or ~/.config/ls-coords/ls-coords.yaml)")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&o.equinox, "equinox", "", "Obliquity source: j2000, b1950, mean, true")
	flags.Float64Var(&o.obliquity, "obliquity", 0, "Fixed obliquity in degrees (overrides -equinox)")
	flags.StringVar(&o.date, "date", "", "Epoch as YYYY-MM-DD or RFC3339 (default now)")
	flags.BoolVar(&o.json, "json", false, "Write JSON instead of text")
	flags.StringVar(&o.notation, "notation", "", "Angle notation: plain or sexa")
}

// env is the resolved runtime for one command.
type env struct {
	cfg       *config.Config
	logger    *logging.Logger
	converter *convert.Converter
	notation  export.Notation
	epoch     time.Time
	json      bool
}

func (a *app) setup(o *options) (*env, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	// Flags win over file and environment.
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.equinox != "" {
		cfg.Conversion.Equinox = o.equinox
		cfg.Conversion.Obliquity = 0
	}
	if o.obliquity != 0 {
		cfg.Conversion.Obliquity = o.obliquity
	}
	if o.notation != "" {
		cfg.Output.Notation = o.notation
	}
	if o.json {
		cfg.Output.Format = "json"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewWithFormat(logging.ParseLevel(cfg.Log.Level), logging.ParseFormat(cfg.Log.Format))
	logger.SetOutput(a.stderr)

	provider, err := cfg.Conversion.Provider()
	if err != nil {
		return nil, err
	}

	epoch, err := parseDate(o.date, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Debug("obliquity source %s, epoch %s", provider.Name(), epoch.Format(time.RFC3339))

	return &env{
		cfg:       cfg,
		logger:    logger,
		converter: convert.New(provider, logger),
		notation:  export.ParseNotation(cfg.Output.Notation),
		epoch:     epoch,
		json:      strings.EqualFold(cfg.Output.Format, "json"),
	}, nil
}

// parseDate accepts YYYY-MM-DD or RFC3339. Empty means now.
func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC3339", s)
	}
	return t.UTC(), nil
}

func (a *app) run(ctx context.Context, args []string) error {
	cmd := "ecl2eq"
	if len(args) == 0 && a.isTTY {
		cmd = "tui"
	}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "ecl2eq":
		return a.runEclToEq(args)
	case "eq2ecl":
		return a.runEqToEcl(args)
	case "geo":
		return a.runGeo(args)
	case "obliquity":
		return a.runObliquity(args)
	case "sun":
		return a.runSun(args)
	case "stars":
		return a.runStars(args)
	case "tui":
		return a.runTUI(ctx, args)
	case "version":
		fmt.Fprintf(a.stdout, "ls-coords v%s\n", version.Version)
		return nil
	case "help":
		fmt.Fprint(a.stdout, usage)
		return nil
	default:
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) newFlagSet(name string) (*flag.FlagSet, *options) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	o := &options{}
	o.register(flags)
	return flags, o
}

func isSet(flags *flag.FlagSet, name string) bool {
	found := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func (a *app) runEclToEq(args []string) error {
	flags, o := a.newFlagSet("ecl2eq")
	lon := flags.Float64("lon", 0, "Ecliptic longitude λ in degrees")
	lat := flags.Float64("lat", 0, "Ecliptic latitude β in degrees")
	batch := flags.Bool("batch", false, "Read 'lon lat' pairs from stdin, one per line")
	if err := flags.Parse(args); err != nil {
		return err
	}

	e, err := a.setup(o)
	if err != nil {
		return err
	}

	var conversions []convert.Conversion
	if *batch {
		conversions, err = e.converter.ConvertLines(a.stdin, e.epoch)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}
	} else {
		if !isSet(flags, "lon") || !isSet(flags, "lat") {
			flags.Usage()
			return errors.New("ecl2eq: -lon and -lat are required (or use -batch)")
		}
		conversions = append(conversions, e.converter.Convert(astro.NewEclipticalCoordinate(*lon, *lat), e.epoch))
	}

	if e.json {
		return export.ExportConversions(conversions, e.notation, time.Now().UTC()).WriteJSON(a.stdout)
	}
	if len(conversions) == 1 {
		c := conversions[0]
		fmt.Fprintf(a.stdout, "α %s, δ %s\n",
			e.notation.FormatRA(c.Equatorial.RightAscension()),
			e.notation.FormatAngle(c.Equatorial.Declination()))
		fmt.Fprintf(a.stdout, "α %.7fh  δ %.7f°  (ε %.7f° %s)\n",
			c.Equatorial.RightAscension(), c.Equatorial.Declination(), c.ObliquityDeg, c.Equinox)
		return nil
	}
	export.WriteSummaryTable(a.stdout, conversions, e.notation)
	return nil
}

func (a *app) runEqToEcl(args []string) error {
	flags, o := a.newFlagSet("eq2ecl")
	ra := flags.Float64("ra", 0, "Right ascension α in hours")
	dec := flags.Float64("dec", 0, "Declination δ in degrees")
	starName := flags.String("star", "", "Use a cataloged star's J2000 position instead of -ra/-dec")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var pos astro.EquatorialCoordinate
	switch {
	case *starName != "":
		s, ok := astro.DefaultStarCatalog().Find(*starName)
		if !ok {
			return fmt.Errorf("eq2ecl: unknown star %q", *starName)
		}
		pos = s.Position
	case isSet(flags, "ra") && isSet(flags, "dec"):
		pos = astro.NewEquatorialCoordinate(*ra, *dec)
	default:
		flags.Usage()
		return errors.New("eq2ecl: -ra and -dec (or -star) are required")
	}

	e, err := a.setup(o)
	if err != nil {
		return err
	}

	inv := e.converter.Invert(pos, e.epoch)
	if e.json {
		return export.WriteInversionJSON(a.stdout, inv, e.notation)
	}
	fmt.Fprintf(a.stdout, "λ %s, β %s\n",
		e.notation.FormatAngle(inv.Ecliptical.Longitude()),
		e.notation.FormatAngle(inv.Ecliptical.Latitude()))
	fmt.Fprintf(a.stdout, "λ %.7f°  β %.7f°  (ε %.7f° %s)\n",
		inv.Ecliptical.Longitude(), inv.Ecliptical.Latitude(), inv.ObliquityDeg, inv.Equinox)
	return nil
}

func (a *app) runGeo(args []string) error {
	flags, o := a.newFlagSet("geo")
	lon := flags.Float64("lon", 0, "Geographic longitude in degrees (default from config site)")
	lat := flags.Float64("lat", 0, "Geographic latitude in degrees (default from config site)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	e, err := a.setup(o)
	if err != nil {
		return err
	}

	name := e.cfg.Site.Name
	site := astro.NewGeographicalCoordinate(e.cfg.Site.Longitude, e.cfg.Site.Latitude)
	if isSet(flags, "lon") {
		site = site.WithLongitude(*lon)
		name = ""
	}
	if isSet(flags, "lat") {
		site = site.WithLatitude(*lat)
		name = ""
	}

	if name != "" {
		fmt.Fprintf(a.stdout, "%s: ", name)
	}
	fmt.Fprintln(a.stdout, site.String())
	return nil
}

func (a *app) runObliquity(args []string) error {
	flags, o := a.newFlagSet("obliquity")
	if err := flags.Parse(args); err != nil {
		return err
	}

	e, err := a.setup(o)
	if err != nil {
		return err
	}

	p := e.converter.Provider()
	fmt.Fprintf(a.stdout, "Epoch       %s\n", e.epoch.Format(time.RFC3339))
	fmt.Fprintf(a.stdout, "J2000       %.7f°\n", astro.ObliquityJ2000)
	fmt.Fprintf(a.stdout, "B1950       %.7f°\n", astro.ObliquityB1950)
	fmt.Fprintf(a.stdout, "Mean        %.7f°  %s\n", obliquity.MeanObliquity(e.epoch), e.notation.FormatAngle(obliquity.MeanObliquity(e.epoch)))
	fmt.Fprintf(a.stdout, "Nutation Δε %+.3f\"\n", obliquity.NutationInObliquity(e.epoch)*3600)
	fmt.Fprintf(a.stdout, "True        %.7f°  %s\n", obliquity.TrueObliquity(e.epoch), e.notation.FormatAngle(obliquity.TrueObliquity(e.epoch)))
	fmt.Fprintf(a.stdout, "Selected    %.7f°  (%s)\n", p.Obliquity(e.epoch), p.Name())
	return nil
}

func (a *app) runSun(args []string) error {
	flags, o := a.newFlagSet("sun")
	if err := flags.Parse(args); err != nil {
		return err
	}

	e, err := a.setup(o)
	if err != nil {
		return err
	}

	c := e.converter.Convert(astro.SunEcliptical(e.epoch), e.epoch)
	if e.json {
		return export.ExportConversions([]convert.Conversion{c}, e.notation, time.Now().UTC()).WriteJSON(a.stdout)
	}
	fmt.Fprintf(a.stdout, "Sun @ %s\n", e.epoch.Format(time.RFC3339))
	fmt.Fprintf(a.stdout, "λ %s\n", e.notation.FormatAngle(c.Ecliptical.Longitude()))
	fmt.Fprintf(a.stdout, "α %s, δ %s  (ε %.7f° %s)\n",
		e.notation.FormatRA(c.Equatorial.RightAscension()),
		e.notation.FormatAngle(c.Equatorial.Declination()),
		c.ObliquityDeg, c.Equinox)
	return nil
}

func (a *app) runStars(args []string) error {
	flags, o := a.newFlagSet("stars")
	name := flags.String("name", "", "Only this star")
	maxLat := flags.Float64("ecliptic", 0, "Only stars within this many degrees of the ecliptic (0 = all)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	e, err := a.setup(o)
	if err != nil {
		return err
	}

	cat := astro.DefaultStarCatalog()
	stars := cat.Stars
	eps := e.converter.Provider().Obliquity(e.epoch)
	switch {
	case *name != "":
		s, ok := cat.Find(*name)
		if !ok {
			return fmt.Errorf("stars: unknown star %q", *name)
		}
		stars = []astro.Star{s}
	case *maxLat > 0:
		stars = cat.NearEcliptic(*maxLat, eps)
	}

	e.logger.Debug("listing %d stars with ε=%.7f", len(stars), eps)

	fmt.Fprintf(a.stdout, "%-18s %5s %-18s %-18s %7s\n", "Star", "Mag", "λ", "β", "Elong")
	fmt.Fprintln(a.stdout, strings.Repeat("─", 70))
	for _, s := range stars {
		ecl := s.Ecliptical(eps)
		fmt.Fprintf(a.stdout, "%-18s %5.2f %-18s %-18s %6.1f°\n",
			s.Name, s.Mag,
			e.notation.FormatAngle(ecl.Longitude()),
			e.notation.FormatAngle(ecl.Latitude()),
			astro.Elongation(ecl, e.epoch))
	}
	fmt.Fprintf(a.stdout, "\nTotal: %d stars\n", len(stars))
	return nil
}

func (a *app) runTUI(ctx context.Context, args []string) error {
	flags, o := a.newFlagSet("tui")
	if err := flags.Parse(args); err != nil {
		return err
	}

	e, err := a.setup(o)
	if err != nil {
		return err
	}

	// Keep log output off the alternate screen.
	e.logger.SetOutput(io.Discard)

	model := ui.New(e.converter.Provider(), e.notation, e.logger)
	if o.date != "" {
		model.SetEpoch(e.epoch)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
