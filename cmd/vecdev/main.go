// Command vecdev renders drawing scripts to vector output.
//
// Without -in it renders a built-in demo page. With -watch it re-renders
// whenever the script file changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/vecdev"
	"github.com/gogpu/vecdev/backend"
	_ "github.com/gogpu/vecdev/backend/pdf"    // registers "pdf"
	_ "github.com/gogpu/vecdev/backend/record" // registers "record"
	"github.com/gogpu/vecdev/internal/script"
	"github.com/gogpu/vecdev/typeface"
)

type config struct {
	in      string
	out     string
	backend string
	width   int
	height  int
	exact   bool
}

func main() {
	var (
		cfg     config
		watch   = flag.Bool("watch", false, "re-render when the script changes")
		verbose = flag.Bool("v", false, "log debug records")
		list    = flag.Bool("list", false, "list registered backends and exit")
	)
	flag.StringVar(&cfg.in, "in", "", "script file (default: built-in demo)")
	flag.StringVar(&cfg.out, "out", "demo.pdf", "output file, - for stdout")
	flag.StringVar(&cfg.backend, "backend", "pdf", "output backend")
	flag.IntVar(&cfg.width, "width", 800, "demo page width")
	flag.IntVar(&cfg.height, "height", 600, "demo page height")
	flag.BoolVar(&cfg.exact, "exact-clip", false, "clip to every rectangle of a region instead of its bounds")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	vecdev.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *list {
		fmt.Println(strings.Join(backend.Names(), "\n"))
		return
	}

	if err := render(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Rendered %s with %s backend\n", cfg.out, cfg.backend)

	if *watch {
		if cfg.in == "" {
			log.Fatal("-watch needs -in")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := watchScript(ctx, cfg); err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
	}
}

// render draws the script, or the demo, and writes the backend output.
func render(cfg config) error {
	var (
		s   *script.Script
		err error
	)
	w, h := cfg.width, cfg.height
	if cfg.in != "" {
		s, err = script.Load(cfg.in)
		if err != nil {
			return err
		}
		w, h = s.Width, s.Height
	}

	surf, err := backend.New(cfg.backend, w, h)
	if err != nil {
		return err
	}
	defer surf.Release()

	fonts := typeface.NewRegistry()
	opts := []vecdev.DeviceOption{vecdev.WithFonts(fonts)}
	if cfg.exact {
		opts = append(opts, vecdev.WithClipMode(vecdev.ClipExact))
	}
	dev, err := vecdev.NewDevice(surf, w, h, opts...)
	if err != nil {
		return err
	}

	if s != nil {
		err = s.Execute(dev, fonts)
	} else {
		err = drawDemo(dev, fonts)
	}
	if cerr := dev.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return writeOutput(surf, cfg.out)
}

func writeOutput(wt io.WriterTo, name string) error {
	if name == "-" {
		_, err := wt.WriteTo(os.Stdout)
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// watchScript re-renders on every write to the script. The directory is
// watched, since editors often replace files instead of writing them.
func watchScript(ctx context.Context, cfg config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(cfg.in)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.Printf("Watching %s\n", cfg.in)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)) {
				continue
			}
			if err := render(cfg); err != nil {
				log.Printf("Render failed: %v", err)
				continue
			}
			log.Printf("Rendered %s\n", cfg.out)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v", err)
		}
	}
}
