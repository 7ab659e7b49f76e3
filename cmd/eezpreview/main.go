// Command eezpreview renders the pages of a project to PNG files.
//
// Usage:
//
//	eezpreview -project panel.json [-data live.json] [-page main] [-out dir] [-watch]
//	eezpreview -project panel.json -dump button
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/eezkit/eezdraw"
	"github.com/eezkit/eezdraw/data"
	"github.com/eezkit/eezdraw/project"
	"github.com/eezkit/eezdraw/style"
	"github.com/eezkit/eezdraw/widget"
)

func main() {
	var (
		projectPath = flag.String("project", "", "project file (required)")
		dataPath    = flag.String("data", "", "data snapshot file, overrides the project data")
		pageName    = flag.String("page", "", "render only this page")
		outDir      = flag.String("out", ".", "output directory")
		watch       = flag.Bool("watch", false, "re-render when the project or data file changes")
		dump        = flag.String("dump", "", "print the resolved style with this name and exit")
		cacheSize   = flag.Int("cache", eezdraw.DefaultCacheCapacity, "draw cache capacity")
		verbose     = flag.Bool("v", false, "log cache activity")
	)
	flag.Parse()

	if *projectPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	eezdraw.SetLogger(logger)

	p := &previewer{
		projectPath: *projectPath,
		dataPath:    *dataPath,
		page:        *pageName,
		outDir:      *outDir,
		cache:       eezdraw.NewDrawCache(*cacheSize),
		widgets:     widget.NewRegistry(widget.WithLogger(logger)),
		log:         logger,
	}

	if *dump != "" {
		if err := p.dump(*dump); err != nil {
			log.Fatalf("dump: %v", err)
		}
		return
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := p.render(); err != nil {
		if !*watch {
			log.Fatalf("Failed to render: %v", err)
		}
		logger.Error("render failed", "err", err)
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := p.watch(ctx); err != nil {
			log.Fatalf("watch: %v", err)
		}
	}
}

// previewer renders a project. The draw cache outlives reloads so a
// data-only change reuses every static bitmap.
type previewer struct {
	projectPath string
	dataPath    string
	page        string
	outDir      string

	cache   *eezdraw.DrawCache
	widgets *widget.Registry
	log     *slog.Logger
}

// load reads the project and the data snapshot to render with.
func (p *previewer) load() (*project.Project, data.Source, error) {
	proj, err := project.Load(p.projectPath)
	if err != nil {
		return nil, nil, err
	}
	if p.dataPath == "" {
		return proj, proj.Data, nil
	}
	snapshot, err := data.LoadStatic(p.dataPath)
	if err != nil {
		return nil, nil, err
	}
	return proj, snapshot, nil
}

// render writes <out>/<page>.png for each selected page.
func (p *previewer) render() error {
	proj, src, err := p.load()
	if err != nil {
		return err
	}

	pages := proj.Pages
	if p.page != "" {
		page := proj.Page(p.page)
		if page == nil {
			return fmt.Errorf("no page named %q", p.page)
		}
		pages = []*widget.Page{page}
	}

	ctx := widget.NewContext(eezdraw.NewRenderer(proj, eezdraw.WithCache(p.cache)), src)
	for _, page := range pages {
		pm, err := p.widgets.RenderPage(ctx, page)
		if err != nil {
			return err
		}
		out := filepath.Join(p.outDir, page.Name+".png")
		if err := pm.SavePNG(out); err != nil {
			return fmt.Errorf("save %s: %w", out, err)
		}
		p.log.Info("page rendered", "page", page.Name, "file", out)
	}

	stats := p.cache.Stats()
	p.log.Debug("draw cache", "len", stats.Len, "hits", stats.Hits, "misses", stats.Misses,
		"evictions", stats.Evictions)
	return nil
}

// resolvedStyle is what -dump prints.
type resolvedStyle struct {
	Chain    []string
	CacheID  string
	Resolved style.Resolved
}

func (p *previewer) dump(name string) error {
	proj, err := project.Load(p.projectPath)
	if err != nil {
		return err
	}
	s := proj.FindStyle(name)
	if s == nil {
		return fmt.Errorf("no style named %q", name)
	}

	r := style.NewResolver(proj)
	chain, err := r.Chain(s)
	if err != nil {
		return err
	}
	out := resolvedStyle{}
	for _, c := range chain {
		out.Chain = append(out.Chain, c.Name)
	}
	if out.CacheID, err = r.CacheID(s); err != nil {
		return err
	}
	if out.Resolved, err = r.Resolve(s); err != nil {
		return err
	}

	cfg := spew.ConfigState{Indent: "\t", DisablePointerAddresses: true, MaxDepth: 3}
	cfg.Fdump(os.Stdout, out)
	return nil
}
