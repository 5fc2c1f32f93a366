package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	apptagging "github.com/Torchit1/Speed-Draft/internal/application/tagging"
	domain "github.com/Torchit1/Speed-Draft/internal/domain/tagging"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/config"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/console"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/logger"
	"github.com/Torchit1/Speed-Draft/internal/infrastructure/persistence"
)

func main() {
	// Parse flags
	var (
		projectPath string
		logLevel    string
		hostVersion int
	)

	flag.StringVar(&projectPath, "project", "", "Path to the project document (default: project.path from config)")
	flag.StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flag.IntVar(&hostVersion, "host-version", 2024, "Host version stamped on a seeded project")
	flag.Parse()

	command := "run"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if projectPath != "" {
		cfg.Project.Path = projectPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	switch command {
	case "run":
		runTagging(cfg, log)
	case "seed":
		seedProject(cfg, log, hostVersion)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: tagall [flags] <command>

Commands:
  run   Tag elements of the configured categories in selected views (default)
  seed  Create a demonstration project document

Flags:`)
	flag.PrintDefaults()
}

// runTagging executes one interactive tagging session. Failures are logged
// and end the run without a crash; a cancelled selection ends it silently.
func runTagging(cfg *config.Config, log *zap.Logger) {
	store, err := persistence.Open(cfg.Project.Path, log)
	if err != nil {
		log.Error("failed to open project document",
			zap.String("path", cfg.Project.Path), zap.Error(err))
		return
	}
	defer func() {
		_ = store.Close()
	}()

	settings := domain.ToggleSettings{
		CheckVisibility:  cfg.Tagging.ToggleVisibility,
		CheckBlankTag:    cfg.Tagging.CheckBlankTag,
		TagWindowsInPlan: cfg.Tagging.TagWindowsInPlan,
	}
	service := apptagging.NewService(store, store, console.NewTerminalPrompter(),
		cfg.Tagging.Categories, settings, log)

	report, err := service.Run(context.Background())
	if err != nil {
		log.Error("tagging run failed", zap.Error(err))
		return
	}
	if report == nil {
		// Cancelled or aborted; nothing was changed.
		return
	}

	log.Info("tagging run finished",
		zap.Int("views", report.Views),
		zap.Int("elements", report.Elements),
		zap.Int("tagged", report.Tagged),
		zap.Int("deleted_blank", report.DeletedBlank),
		zap.Int("skipped_already_tagged", report.SkippedAlreadyTagged),
		zap.Int("skipped_not_visible", report.SkippedNotVisible),
		zap.Int("skipped_no_bounding_box", report.SkippedNoBoundingBox),
		zap.Int("failed", report.Failed))
}

// seedProject initializes the configured project document with a small
// demonstration model.
func seedProject(cfg *config.Config, log *zap.Logger, hostVersion int) {
	store, err := persistence.Create(cfg.Project.Path, hostVersion, log)
	if err != nil {
		log.Error("failed to create project document",
			zap.String("path", cfg.Project.Path), zap.Error(err))
		return
	}
	defer func() {
		_ = store.Close()
	}()

	if err := seedSampleProject(context.Background(), store); err != nil {
		log.Error("failed to seed project document", zap.Error(err))
		return
	}

	log.Info("seeded project document",
		zap.String("path", cfg.Project.Path),
		zap.Int("host_version", hostVersion))
}

func seedSampleProject(ctx context.Context, store *persistence.ProjectStore) error {
	box := func(x, y, z float64) *domain.BoundingBox {
		return &domain.BoundingBox{
			Min: domain.XYZ{X: x, Y: y, Z: z},
			Max: domain.XYZ{X: x + 3, Y: y + 1, Z: z + 7},
		}
	}

	doors, err := store.InsertCategory(ctx, "Doors", true, true)
	if err != nil {
		return err
	}
	windows, err := store.InsertCategory(ctx, "Windows", true, true)
	if err != nil {
		return err
	}
	// No tag family loaded for furniture, which exercises the per-run
	// continue-anyway prompt and the blank-tag cleanup.
	furniture, err := store.InsertCategory(ctx, "Furniture", true, false)
	if err != nil {
		return err
	}
	if _, err := store.InsertCategory(ctx, "Lines", false, false); err != nil {
		return err
	}

	door1, err := store.InsertElement(ctx, doors.ID, box(0, 0, 0))
	if err != nil {
		return err
	}
	door2, err := store.InsertElement(ctx, doors.ID, box(10, 0, 0))
	if err != nil {
		return err
	}
	door3, err := store.InsertElement(ctx, doors.ID, box(20, 0, 12))
	if err != nil {
		return err
	}
	window1, err := store.InsertElement(ctx, windows.ID, box(5, 8, 3))
	if err != nil {
		return err
	}
	// One element the host reports no bounding box for.
	window2, err := store.InsertElement(ctx, windows.ID, nil)
	if err != nil {
		return err
	}
	chair, err := store.InsertElement(ctx, furniture.ID, box(2, 2, 0))
	if err != nil {
		return err
	}
	desk, err := store.InsertElement(ctx, furniture.ID, box(4, 4, 0))
	if err != nil {
		return err
	}

	level1, err := store.InsertView(ctx, "Level 1", domain.ViewTypeFloorPlan, false)
	if err != nil {
		return err
	}
	level2, err := store.InsertView(ctx, "Level 2", domain.ViewTypeFloorPlan, false)
	if err != nil {
		return err
	}
	elevation, err := store.InsertView(ctx, "East Elevation", domain.ViewTypeElevation, false)
	if err != nil {
		return err
	}
	section, err := store.InsertView(ctx, "Section A-A", domain.ViewTypeSection, false)
	if err != nil {
		return err
	}
	if _, err := store.InsertView(ctx, "Plan Template", domain.ViewTypeFloorPlan, true); err != nil {
		return err
	}

	viewElements := map[int64][]int64{
		level1.ID:    {door1.ID, door2.ID, window1.ID, window2.ID, chair.ID, desk.ID},
		level2.ID:    {door3.ID},
		elevation.ID: {window1.ID, window2.ID},
		section.ID:   {door1.ID, door3.ID},
	}
	for viewID, elementIDs := range viewElements {
		if err := store.SetViewElements(ctx, viewID, elementIDs); err != nil {
			return err
		}
	}

	// A previous session already tagged one door on Level 1.
	_, err = store.InsertExistingTag(ctx, level1.ID,
		fmt.Sprintf("Doors-%d", door1.ID), []int64{door1.ID})
	return err
}
