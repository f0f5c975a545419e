package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"terracraft/internal/gen"
	"terracraft/internal/gen/tuning"
	"terracraft/internal/persistence/snapshot"
	"terracraft/internal/sim/world"
	"terracraft/internal/transport/observer"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "http listen address")
		name     = flag.String("name", "world_1", "world name")
		width    = flag.Int("width", 1200, "world width in tiles")
		height   = flag.Int("height", 400, "world height in tiles")
		seed     = flag.Uint("seed", 1337, "world seed (used only when generating fresh)")
		presets  = flag.String("presets", "", "worldgen preset file (optional)")
		preset   = flag.String("preset", "", "preset name (default: file's default preset)")
		snapPath = flag.String("snapshot", "", "serve a snapshot instead of generating (optional)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	var (
		w *world.World
		s uint32
	)
	if *snapPath != "" {
		loaded, snap, err := snapshot.Import(*snapPath)
		if err != nil {
			logger.Fatalf("load snapshot: %v", err)
		}
		w, s = loaded, snap.Header.Seed
		*name = snap.Header.Name
		logger.Printf("loaded %s (%dx%d seed=%d) from %s", *name, w.Width(), w.Height(), s, *snapPath)
	} else {
		file, err := tuning.Load(*presets)
		if err != nil {
			logger.Fatalf("load presets: %v", err)
		}
		cfg, err := file.Config(*preset)
		if err != nil {
			logger.Fatalf("resolve preset: %v", err)
		}
		w = world.New(*width, *height)
		s = uint32(*seed)
		start := time.Now()
		gen.Generate(w, s, cfg)
		logger.Printf("generated %s (%dx%d seed=%d) in %s", *name, *width, *height, s, time.Since(start))
	}

	obs := observer.NewServer(w, *name, s, logger)
	den := gen.FindDen(w, s)
	digest := w.Digest()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/observe", obs.Handler())
	mux.HandleFunc("/v1/info", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(map[string]any{
			"name":   *name,
			"width":  w.Width(),
			"height": w.Height(),
			"seed":   s,
			"digest": hex.EncodeToString(digest[:]),
			"den": map[string]int{
				"center_x": den.CenterX,
				"center_y": den.CenterY,
				"radius_x": den.RadiusX,
				"radius_y": den.RadiusY,
			},
		})
	})

	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		logger.Printf("listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Printf("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
