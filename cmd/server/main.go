package main

import (
	"context"
	"database/sql"
	"eld-log-service/internal/adapters/cache"
	"eld-log-service/internal/adapters/geocode"
	"eld-log-service/internal/adapters/planner"
	"eld-log-service/internal/api"
	"eld-log-service/internal/config"
	"eld-log-service/internal/platform/db"
	"eld-log-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (planner client, geocode cache, ORS) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	plannerURL := config.Get("PLANNER_URL", planner.DefaultPlannerURL)

	renderCfg, err := config.LoadRenderConfig(config.Get("RENDER_CONFIG", ""))
	if err != nil {
		log.Fatal(err)
	}
	if v := config.Get("MATCHER", ""); v != "" {
		renderCfg.Matcher.Strategy = v
	}
	renderCfg.Matcher.ProximityKm = config.GetFloat("PROXIMITY_KM", renderCfg.Matcher.ProximityKm)
	if err := renderCfg.Validate(); err != nil {
		log.Fatal(err)
	}

	geocodeCache, closeCache, err := openGeocodeCache(config.Get("GEOCODE_CACHE", "sqlite"))
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	geocoder, err := newGeocoder(config.Get("ORS_API_KEY", ""), geocodeCache)
	if err != nil {
		log.Fatal(err)
	}
	if renderCfg.Matcher.Strategy == config.MatcherProximity && geocoder == nil {
		log.Println("proximity matcher needs ORS_API_KEY or a geocode cache; using first-token matching")
	}

	router := api.NewRouter(planner.NewHTTPPlanner(plannerURL), geocoder, renderCfg)

	// Timeouts allow for a slow upstream planner plus per-address geocoding.
	log.Printf("Server listening addr=:%s planner=%s matcher=%s", port, plannerURL, renderCfg.Matcher.Strategy)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache selects the geocode cache backend. "none" disables caching.
func openGeocodeCache(kind string) (ports.GeocodeCache, func(), error) {
	noop := func() {}

	switch strings.ToLower(kind) {
	case "none", "":
		return nil, noop, nil

	case "sqlite":
		conn, err := db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
		if err != nil {
			return nil, noop, err
		}
		return migratedCache(conn, db.SQLite)

	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if databaseURL == "" {
			return nil, noop, fmt.Errorf("GEOCODE_CACHE=postgres requires DATABASE_URL")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, noop, err
		}
		return migratedCache(conn, db.Postgres)

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.Get("REDIS_ADDR", "localhost:6379")})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		return cache.NewRedisGeocodeCache(client), func() { client.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unknown GEOCODE_CACHE %q (want sqlite, postgres, redis or none)", kind)
}

// migratedCache applies pending migrations so a fresh database is usable
// without a separate dbtool run.
func migratedCache(conn *sql.DB, dialect db.Dialect) (ports.GeocodeCache, func(), error) {
	if err := db.MigrateUp(conn, dialect); err != nil {
		conn.Close()
		return nil, func() {}, fmt.Errorf("migrate %s geocode cache: %w", dialect, err)
	}

	if dialect == db.Postgres {
		return cache.NewSQLGeocodeCache(conn), closer(conn), nil
	}
	return cache.NewSqliteGeocodeCache(conn), closer(conn), nil
}

func closer(conn *sql.DB) func() {
	return func() {
		if err := conn.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}
}

// newGeocoder returns nil when neither an API key nor a cache is available.
func newGeocoder(apiKey string, c ports.GeocodeCache) (ports.Geocoder, error) {
	var next ports.Geocoder
	if apiKey != "" {
		ors, err := geocode.NewORSGeocoder(apiKey, config.Get("ORS_BASE_URL", ""))
		if err != nil {
			return nil, err
		}
		next = ors
	}

	switch {
	case c != nil:
		return geocode.NewCachingGeocoder(c, next), nil
	case next != nil:
		return next, nil
	}
	return nil, nil
}
