package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var version = "dev"

var (
	app = kingpin.New(
		"ipmapper",
		"Put IP addresses found in your logs on a map")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("IPMAPPER_DEBUG").
		Bool()
	logFile = app.Flag("log-file", "Write logs into this file instead of stderr.").
		Envar("IPMAPPER_LOG_FILE").
		String()

	serveCmd        = app.Command("serve", "Run web UI.")
	serveConfigFile = serveCmd.Arg("config-path", "Path to the config.").
			Required().
			ExistingFile()

	renderCmd        = app.Command("render", "Render a map for a log file as a standalone HTML page.")
	renderConfigFile = renderCmd.Flag("config", "Path to the config.").
				Short('c').
				ExistingFile()
	renderProvider = renderCmd.Flag("provider", "Geolocation service.").
			Short('p').
			Envar("IPMAPPER_PROVIDER").
			Default("ipapi").
			Enum("ipapi", "ipinfo", "ipgeolocation")
	renderToken = renderCmd.Flag("token", "API token for a geolocation service.").
			Short('t').
			Envar("IPMAPPER_TOKEN").
			String()
	renderOutput = renderCmd.Flag("output", "Path to the resulting HTML page. Stdout by default.").
			Short('o').
			String()
	renderLogPath = renderCmd.Arg("log-path", "Path to the log file.").
			Required().
			String()
)

func main() {
	godotenv.Load() // nolint: errcheck

	app.Version(version)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	log := newLogger(makeLogWriter(*logFile), *debug)
	fs := afero.NewOsFs()

	ctx, cancel := makeRootContext()
	defer cancel()

	var err error

	switch command {
	case serveCmd.FullCommand():
		var conf *config

		conf, err = parseConfig(fs, *serveConfigFile)
		if err == nil {
			err = runServe(ctx, conf, log)
		}
	case renderCmd.FullCommand():
		conf := defaultConfig()

		if *renderConfigFile != "" {
			conf, err = parseConfig(fs, *renderConfigFile)
		}

		if err == nil {
			err = runRender(ctx, fs, os.Stdout, conf, log, renderOpts{
				provider: *renderProvider,
				token:    *renderToken,
				logPath:  *renderLogPath,
				output:   *renderOutput,
			})
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
