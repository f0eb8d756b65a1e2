// cmd/sim/main.go
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"go-td-sim/internal/app"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/pkg/gridmap"
	"go-td-sim/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "balance file (YAML); built-in defaults when empty")
	seed := flag.Int64("seed", 1, "random seed; 0 picks one from the clock")
	ticks := flag.Int("ticks", 9000, "maximum number of ticks to simulate")
	autobuild := flag.String("autobuild", string(defs.TowerArrow), "tower kind to build next to the paths whenever affordable; empty disables")
	dump := flag.Bool("json", false, "print the final snapshot as JSON")
	logLevel := flag.String("log-level", "", "log level; LOG_LEVEL or info when empty")
	logFormat := flag.String("log-format", "", "log format: text or json; LOG_FORMAT when empty")
	flag.Parse()

	if err := logger.Init(logger.Options{Level: *logLevel, Format: *logFormat}); err != nil {
		logger.Log.WithError(err).Fatal("cannot configure logging")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("cannot load config")
		}
		cfg = loaded
	}

	session, err := app.NewSession(cfg, app.WithSeed(*seed))
	if err != nil {
		logger.Log.WithError(err).Fatal("cannot start session")
	}

	var sites []gridmap.Point
	if *autobuild != "" {
		sites = buildSites(session.Paths())
	}

	for i := 0; i < *ticks && session.Running(); i++ {
		for len(sites) > 0 {
			_, err := session.PlaceTower(defs.TowerKind(*autobuild), sites[0].X, sites[0].Y)
			if err != nil {
				break
			}
			sites = sites[1:]
		}
		session.Tick()
	}

	snap := session.Snapshot()
	logger.Log.WithFields(logrus.Fields{
		"session_id": snap.SessionID,
		"seed":       session.Seed(),
		"ticks":      snap.Tick,
		"wave":       snap.Wave.Number,
		"lives":      snap.Lives,
		"money":      snap.Money,
		"score":      snap.Score,
		"towers":     len(snap.Towers),
		"running":    snap.Running,
	}).Info("simulation finished")

	if *dump {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			logger.Log.WithError(err).Fatal("cannot encode snapshot")
		}
	}
}

// buildSites returns free cells touching a path, in path walk order.
func buildSites(paths *gridmap.Library) []gridmap.Point {
	grid := paths.Grid()
	seen := make(map[gridmap.Point]bool)
	var sites []gridmap.Point
	for _, path := range paths.Paths() {
		for _, c := range path.Cells() {
			for _, n := range []gridmap.Point{{X: c.X, Y: c.Y - 1}, {X: c.X, Y: c.Y + 1}, {X: c.X - 1, Y: c.Y}, {X: c.X + 1, Y: c.Y}} {
				if seen[n] || !grid.Contains(n) || paths.OnPath(n) {
					continue
				}
				seen[n] = true
				sites = append(sites, n)
			}
		}
	}
	return sites
}
