package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/social-steps/internal/config"
	"github.com/jwebster45206/social-steps/internal/logger"
	"github.com/jwebster45206/social-steps/internal/storage"
	"github.com/jwebster45206/social-steps/pkg/grid"
	"github.com/jwebster45206/social-steps/pkg/scenario"
	"github.com/jwebster45206/social-steps/pkg/state"
)

var startPosition = state.Position{X: 1, Y: 1}

func main() {
	cfg := config.Load()

	log, closeLog, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeLog() // Ignore error in defer
	}()

	log.Info("Starting Social Steps",
		"environment", cfg.Environment,
		"storage_driver", cfg.StorageDriver,
		"data_dir", cfg.DataDir)

	var store storage.Storage
	switch cfg.StorageDriver {
	case config.DriverRedis:
		rs, err := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to configure Redis storage: %v\n", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := rs.WaitForConnection(ctx); err != nil {
			cancel()
			fmt.Fprintf(os.Stderr, "Could not connect to Redis at %s: %v\n", cfg.RedisURL, err)
			os.Exit(1)
		}
		cancel()
		store = rs
	case config.DriverFile:
		store = storage.NewFileStorage(cfg.DataDir, log)
	default:
		fmt.Fprintf(os.Stderr, "Invalid storage driver %q (supported: file, redis)\n", cfg.StorageDriver)
		os.Exit(1)
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	g := grid.Default()
	pack := loadPack(cfg, store, g)

	gs, err := state.New(g, pack, startPosition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
		os.Exit(1)
	}

	if cfg.SnapshotFile != "" {
		if err := importSnapshotFile(gs, cfg.SnapshotFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to import snapshot %s: %v\n", cfg.SnapshotFile, err)
			os.Exit(1)
		}
		log.Info("Imported snapshot", "file", cfg.SnapshotFile)
	}

	p := tea.NewProgram(NewGameUI(cfg, log, store, gs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadPack resolves the session's content pack: the pack named by config
// when it loads and validates, otherwise the built-in default. An invalid
// pack is rejected wholesale and reported, never half-applied.
func loadPack(cfg *config.Config, store storage.Storage, g *grid.Grid) *scenario.Pack {
	pack := scenario.DefaultPack()
	if cfg.Pack == "" {
		return pack
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	loaded, err := store.GetPack(ctx, cfg.Pack)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load pack %s (%v); using the built-in pack.\n", cfg.Pack, err)
		if files := availablePacks(ctx, store); len(files) > 0 {
			fmt.Fprintf(os.Stderr, "Available packs: %s\n", strings.Join(files, ", "))
		}
		return pack
	}
	if err := loaded.Validate(g); err != nil {
		fmt.Fprintf(os.Stderr, "Pack %s rejected (%v); using the built-in pack.\n", cfg.Pack, err)
		return pack
	}
	return loaded
}

// availablePacks lists the pack filenames the store knows about, sorted,
// for the notice shown when a named pack cannot be found.
func availablePacks(ctx context.Context, store storage.Storage) []string {
	packs, err := store.ListPacks(ctx)
	if err != nil {
		return nil
	}
	files := make([]string, 0, len(packs))
	for _, filename := range packs {
		files = append(files, filename)
	}
	sort.Strings(files)
	return files
}

func importSnapshotFile(gs *state.GameState, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return gs.Import(data)
}
