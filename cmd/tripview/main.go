// Command tripview renders a saved trip plan in the terminal and optionally
// writes PNG duty graphs and an HTML chart page.
package main

import (
	"context"
	"eld-log-service/internal/adapters/cache"
	"eld-log-service/internal/adapters/geocode"
	"eld-log-service/internal/adapters/planner"
	"eld-log-service/internal/adapters/render"
	"eld-log-service/internal/config"
	"eld-log-service/internal/domain"
	"eld-log-service/internal/platform/db"
	"eld-log-service/internal/ports"
	"eld-log-service/internal/services"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	pngDir := flag.String("png", "", "write one duty graph PNG per day into this directory")
	htmlPath := flag.String("html", "", "write the charts page to this file")
	cfgPath := flag.String("config", config.Get("RENDER_CONFIG", ""), "render config YAML")
	matcher := flag.String("matcher", config.Get("MATCHER", ""), "override the config matcher strategy (first_token or proximity)")
	dbPath := flag.String("db", config.Get("DB_PATH", "data/app.db"), "SQLite geocode cache used by the proximity matcher")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: tripview [flags] <plan.json | ->")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadRenderConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *matcher != "" {
		cfg.Matcher.Strategy = *matcher
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	plan, err := loadPlan(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	view := services.RenderTrip(plan, render.Axis(cfg), newMatcher(context.Background(), cfg, plan, *dbPath))
	fmt.Print(render.TerminalTrip(view, cfg))

	if *pngDir != "" {
		if err := writeGraphs(*pngDir, view, cfg); err != nil {
			log.Fatal(err)
		}
	}
	if *htmlPath != "" {
		if err := writeCharts(*htmlPath, view, cfg); err != nil {
			log.Fatal(err)
		}
	}
}

func loadPlan(arg string) (*domain.TripPlan, error) {
	if arg == "-" {
		return planner.DecodeTripPlan(os.Stdin)
	}
	return planner.FilePlanner{Path: arg}.PlanTrip(context.Background(), domain.TripRequest{})
}

// newMatcher honours the configured strategy. Proximity matching reads
// coordinates from the local geocode cache only; tripview never calls ORS.
func newMatcher(ctx context.Context, cfg config.RenderConfig, plan *domain.TripPlan, dbPath string) ports.WaypointMatcher {
	if cfg.Matcher.Strategy != config.MatcherProximity {
		return services.FirstTokenMatcher{}
	}

	g, closeCache := cachedGeocoder(dbPath)
	defer closeCache()

	m, err := services.NewProximityMatcher(ctx, g, plan.LogEntries, cfg.Matcher.ProximityKm)
	if err != nil {
		log.Printf("proximity matcher unavailable (db=%s), using first-token: %v", dbPath, err)
	}
	return m
}

// cachedGeocoder opens an existing SQLite geocode cache without creating one.
func cachedGeocoder(path string) (ports.Geocoder, func()) {
	noop := func() {}
	if path == "" {
		return nil, noop
	}
	if _, err := os.Stat(path); err != nil {
		return nil, noop
	}

	conn, err := db.OpenSQLite(path)
	if err != nil {
		log.Printf("open geocode cache: %v", err)
		return nil, noop
	}
	return geocode.NewCachingGeocoder(cache.NewSqliteGeocodeCache(conn), nil), func() { conn.Close() }
}

func writeGraphs(dir string, view services.TripView, cfg config.RenderConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create png dir: %w", err)
	}

	for i, day := range view.Days {
		path := filepath.Join(dir, fmt.Sprintf("day_%02d.png", i+1))
		if err := writeFile(path, func(f *os.File) error {
			return render.DutyGraphPNG(f, day, cfg)
		}); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

func writeCharts(path string, view services.TripView, cfg config.RenderConfig) error {
	if err := writeFile(path, func(f *os.File) error {
		return render.ChartsPage(f, view, cfg)
	}); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}

func writeFile(path string, fill func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
