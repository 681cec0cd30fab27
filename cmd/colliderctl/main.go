// colliderctl resolves and simulates collider scenes from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-physics/internal/config"
	"github.com/Faultbox/midgard-physics/internal/logger"
)

var flagNoColor = flag.Bool("no-color", false, "Disable colored output")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	app := &app{
		cfg: cfg,
		au:  aurora.NewAurora(!*flagNoColor),
	}

	command, rest := args[0], args[1:]
	switch command {
	case "resolve":
		err = app.cmdResolve(rest)
	case "simulate", "sim":
		err = app.cmdSimulate(rest)
	case "overlaps":
		err = app.cmdOverlaps(rest)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`colliderctl - collider scene utility

Usage:
  colliderctl [flags] <command> [scene.yaml...]

Commands:
  resolve <scene.yaml>...   Print the fixture each collider resolves to
  simulate <scene.yaml>     Step the world and print final poses
  overlaps <scene.yaml>     List fixtures that overlap at spawn

Flags:
  -config <file>    Config file (default ./physics.yaml)
  -scene <file>     Scene used when none is given as argument
  -steps <n>        Simulation steps
  -debug            Debug logging
  -log-file <file>  Also log to a rotating file
  -no-color         Plain output

Examples:
  colliderctl resolve scenes/demo.yaml
  colliderctl -steps 600 simulate scenes/demo.yaml`)
}

type app struct {
	cfg *config.Config
	au  aurora.Aurora
}

// scenePaths returns the scene files named on the command line, falling back
// to the configured scene.
func (a *app) scenePaths(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if a.cfg.Scene.Path != "" {
		return []string{a.cfg.Scene.Path}, nil
	}
	return nil, fmt.Errorf("no scene given")
}
