package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/herohde/gorgon/pkg/book"
	"github.com/herohde/gorgon/pkg/config"
	"github.com/herohde/gorgon/pkg/engine"
	"github.com/herohde/gorgon/pkg/engine/console"
	"github.com/herohde/gorgon/pkg/engine/uci"
	"github.com/herohde/gorgon/pkg/eval"
	"github.com/herohde/gorgon/pkg/search"
	"github.com/herohde/gorgon/pkg/tablebase"
	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"
)

var configPath = flag.String("config", "gorgon.toml", "Path to a TOML configuration file")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gorgon [options]

gorgon is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logw.Exitf(ctx, "Invalid config %v: %v", *configPath, err)
	}

	root := search.AlphaBeta{
		Eval: search.Quiescence{
			Explore: search.QuiescenceExploration,
			Eval:    eval.NewStandard(eval.DefaultWeights, 1<<16),
		},
	}
	e := engine.New(ctx, "gorgon", "herohde", root, engine.WithOptions(cfg.EngineOptions()))

	// Both are read-only and independent, so set them up concurrently at startup. The book
	// is read in full here, not lazily; the tablebase directory is only recorded.

	var b book.Book
	var tb tablebase.Tablebase

	var g errgroup.Group
	if cfg.OpeningBook != "" {
		g.Go(func() error {
			loaded, err := book.LoadPolyglot(cfg.OpeningBook)
			if err != nil {
				logw.Errorf(ctx, "Opening book %v disabled: %v", cfg.OpeningBook, err)
				return nil
			}
			b = loaded
			return nil
		})
	}
	if cfg.Tablebase != "" {
		g.Go(func() error {
			tb = tablebase.GaviotaDir{Dir: cfg.Tablebase}
			return nil
		})
	}
	_ = g.Wait() // both goroutines only set local state and never return an error

	var uciOpts []uci.Option
	if b != nil {
		uciOpts = append(uciOpts, uci.UseBook(b, time.Now().UnixNano()))
	}
	if tb != nil {
		uciOpts = append(uciOpts, uci.UseTablebase(tb))
	}

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in, uciOpts...)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, root, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
