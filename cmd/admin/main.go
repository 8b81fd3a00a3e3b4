// Package main starts the cashdesk operator dashboard.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	admincmd "github.com/louisbranch/cashdesk/internal/cmd/admin"
	entrypoint "github.com/louisbranch/cashdesk/internal/platform/cmd"
	"github.com/louisbranch/cashdesk/internal/platform/config"
)

func main() {
	cfg, err := admincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[ADMIN] ")
	ctx, stop := entrypoint.SignalContext(context.Background())
	defer stop()

	if err := admincmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
