// Package main implements the cliparams demo CLI.
package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/CliForge/cliparams/internal/app"
	"github.com/CliForge/cliparams/internal/commands"
	"github.com/CliForge/cliparams/pkg/config"
	"github.com/CliForge/cliparams/pkg/loader"
)

const appName = "cliparams"

//go:embed config.yaml
var embeddedFS embed.FS

// version is set at build time
var version = ""

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, opts ...app.Option) error {
	cfgLoader := config.NewLoader(appName, &embeddedFS, "config.yaml")
	if path := configFlag(args); path != "" {
		cfgLoader.SetConfigPath(path)
	}

	cfg, err := cfgLoader.LoadConfig()
	if err != nil {
		return err
	}
	if version != "" {
		cfg.Metadata.Version = version
	}

	container := loader.NewMapContainer()
	ld := loader.New(container, cfg.Commands)
	commands.Register(container, ld)

	a, err := app.New(cfg, ld, opts...)
	if err != nil {
		return err
	}
	return a.Execute(ctx, args)
}

// configFlag returns the value of --config, which has to be known before
// the command tree is built.
func configFlag(args []string) string {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}
