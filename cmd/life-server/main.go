package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"cellular/internal/httpapi"
	"cellular/pkg/core"
	"cellular/pkg/sims/life"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	simName := flag.String("sim", "life", "simulation to run")
	pattern := flag.String("pattern", "gosper-gun", "pattern stamped at the origin, one of "+strings.Join(life.PatternNames(), ", ")+" (empty for none)")
	soup := flag.Int("soup", 0, "half-width of a random soup around the origin (0 disables)")
	seed := flag.Int64("seed", 42, "seed for simulation reset")
	interval := flag.Duration("interval", core.DefaultInterval, "time between generations while running")
	autostart := flag.Bool("run", false, "start ticking immediately")
	flag.Parse()

	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q", *simName)
	}
	sim := factory(map[string]string{
		"pattern": *pattern,
		"soup":    strconv.Itoa(*soup),
		"seed":    strconv.FormatInt(*seed, 10),
	})
	sim.Reset(*seed)

	engine := httpapi.NewEngine(sim, *interval, log.Default())
	if *autostart {
		engine.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[life] tick loop: %v", err)
		}
	}()

	h := server.Default(server.WithHostPorts(*addr), server.WithExitWaitTime(time.Second))
	httpapi.Handler{Engine: engine}.RegisterRoutes(h)

	log.Printf("cellular life-server listening on %s (%s, %d cells)", *addr, sim.Name(), sim.Stats().Population)
	h.Spin()
}
