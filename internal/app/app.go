package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/plantgo/internal/assembler"
	"github.com/specialistvlad/plantgo/internal/ctxlog"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/fsutil"
	"github.com/specialistvlad/plantgo/internal/hcl_adapter"
	"github.com/specialistvlad/plantgo/internal/model"
	"github.com/specialistvlad/plantgo/internal/plant"
	"github.com/specialistvlad/plantgo/internal/registry"
	"github.com/specialistvlad/plantgo/internal/resolver"
	"github.com/specialistvlad/plantgo/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	resolver  *resolver.Resolver
	plant     *plant.Plant
	assembler *assembler.Assembler
}

// NewApp is the constructor for the main application. The report goes to
// outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	r := resolver.New(hcl_adapter.NewLoader(), yaml_adapter.NewLoader())
	for _, p := range cfg.Paths {
		if err := r.AddPath(p.Scheme, p.Dir); err != nil {
			return nil, err
		}
		logger.Debug("Registered package path.", "scheme", p.Scheme, "dir", p.Dir)
	}

	p := plant.New()
	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		resolver:  r,
		plant:     p,
		assembler: assembler.New(p, r, assembler.Options{MaxIncludeDepth: cfg.MaxIncludeDepth}),
	}, nil
}

// Plant returns the application's plant. This is primarily for testing.
func (a *App) Plant() *plant.Plant {
	return a.plant
}

// Run loads every configured description file, finalizes the plant and
// prints the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if _, err := a.Load(ctx); err != nil {
		return err
	}
	if err := a.plant.Finalize(); err != nil {
		return err
	}
	a.logger.Info("Plant finalized.",
		"model_instances", a.plant.NumModelInstances(),
		"bodies", a.plant.NumBodies(),
		"joints", a.plant.NumJoints(),
	)

	RenderReport(a.outW, a.plant, a.config.Styled)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// Load adds the models of every file found under the configured path and
// returns the top-level instance handles in load order.
func (a *App) Load(ctx context.Context) ([]registry.ModelInstanceIndex, error) {
	logger := ctxlog.FromContext(ctx)
	files, err := a.findFiles()
	if err != nil {
		return nil, err
	}
	logger.Debug("Description files found.", "path", a.config.ModelPath, "count", len(files))
	if a.config.InstanceName != "" && len(files) != 1 {
		return nil, fmt.Errorf("an instance name needs exactly one description file, found %d under %s", len(files), a.config.ModelPath)
	}

	var handles []registry.ModelInstanceIndex
	for _, file := range files {
		doc, err := a.resolver.Load(ctx, file)
		if err != nil {
			return handles, loadFailed(logger, file, err)
		}
		if a.config.World || isWorld(doc) {
			added, err := a.assembler.AddModels(ctx, doc)
			handles = append(handles, added...)
			if err != nil {
				return handles, loadFailed(logger, file, fmt.Errorf("%s: %w", file, err))
			}
			continue
		}
		instance, err := a.assembler.AddModel(ctx, doc, a.config.InstanceName)
		if err != nil {
			return handles, loadFailed(logger, file, fmt.Errorf("%s: %w", file, err))
		}
		handles = append(handles, instance)
	}
	return handles, nil
}

// loadFailed logs err with its kind so failures can be filtered by category.
func loadFailed(logger *slog.Logger, file string, err error) error {
	kind := errors.KindOf(err)
	if kind == "" {
		kind = "unknown"
	}
	logger.Error("Failed to load description file.", "file", file, "kind", kind, "error", err)
	return err
}

func (a *App) findFiles() ([]string, error) {
	info, err := os.Stat(a.config.ModelPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{a.config.ModelPath}, nil
	}
	files, err := fsutil.FindFilesByExtension(a.config.ModelPath, a.resolver.Extensions()...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no description files found under %s", a.config.ModelPath)
	}
	return files, nil
}

// isWorld reports whether doc lists sibling entries rather than one model.
func isWorld(doc *model.Document) bool {
	return doc.Name != "" || len(doc.Entries) != 1 || doc.Entries[0].Model == nil
}
