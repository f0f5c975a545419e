package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"terracraft/internal/gen"
	"terracraft/internal/gen/tuning"
	"terracraft/internal/persistence/indexdb"
	"terracraft/internal/persistence/snapshot"
	"terracraft/internal/sim/world"
)

func main() {
	var (
		name    = flag.String("name", "world_1", "world name")
		width   = flag.Int("width", 1200, "world width in tiles")
		height  = flag.Int("height", 400, "world height in tiles")
		seed    = flag.Uint("seed", 1337, "world seed (32-bit)")
		presets = flag.String("presets", "", "worldgen preset file (optional)")
		preset  = flag.String("preset", "", "preset name (default: file's default preset)")
		export  = flag.String("export", "", "write a snapshot to this path (optional)")
		dbPath  = flag.String("db", "", "record the world into this index db (optional)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[worldgen] ", log.LstdFlags|log.Lmicroseconds)

	file, err := tuning.Load(*presets)
	if err != nil {
		logger.Fatalf("load presets: %v", err)
	}
	cfg, err := file.Config(*preset)
	if err != nil {
		logger.Fatalf("resolve preset: %v", err)
	}

	w := world.New(*width, *height)
	s := uint32(*seed)

	start := time.Now()
	gen.Generate(w, s, cfg)
	logger.Printf("generated %s (%dx%d seed=%d) in %s", *name, *width, *height, s, time.Since(start))

	digest := w.Digest()
	logger.Printf("digest %s", hex.EncodeToString(digest[:]))

	den := gen.FindDen(w, s)
	if den.Valid() {
		logger.Printf("dragon den at (%d,%d) radii (%d,%d)", den.CenterX, den.CenterY, den.RadiusX, den.RadiusY)
	} else {
		logger.Printf("world too small for a dragon den")
	}
	logCensus(logger, w)

	if *export != "" {
		if err := snapshot.Export(*export, *name, w, s, cfg); err != nil {
			logger.Fatalf("export snapshot: %v", err)
		}
		logger.Printf("snapshot written to %s", *export)
	}

	if *dbPath != "" {
		idx, err := indexdb.OpenSQLite(*dbPath)
		if err != nil {
			logger.Fatalf("open index db: %v", err)
		}
		idx.RecordWorld(*name, w, s, den, *export)
		if err := idx.Close(); err != nil {
			logger.Fatalf("close index db: %v", err)
		}
		logger.Printf("recorded in %s", *dbPath)
	}
}

func logCensus(logger *log.Logger, w *world.World) {
	census := w.Census()
	types := make([]world.TileType, 0, len(census))
	for t := range census {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		logger.Printf("  %-12s %d", fmt.Sprintf("%v:", t), census[t])
	}
}
