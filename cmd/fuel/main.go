package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	zap "go.uber.org/zap"

	client "github.com/fueltools/go-fuel/pkg/client"
	config "github.com/fueltools/go-fuel/pkg/config"
	rest "github.com/fueltools/go-fuel/pkg/rest"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Configuration
	Config string `env:"FUEL_CONFIG" help:"Path to the configuration file"`
	Cache  string `env:"FUEL_CACHE" help:"Override the model cache location"`

	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Context
	ctx    context.Context
	client *client.Client
	log    *zap.Logger
}

type CLI struct {
	Globals

	// Servers and models
	Servers ListServersCmd `cmd:"" help:"Return the configured servers"`
	Models  ListModelsCmd  `cmd:"" help:"Return a list of models on the configured servers"`
	Detail  ModelDetailCmd `cmd:"" help:"Return the details of a model"`

	// Commands
	Download DownloadCmd `cmd:"" help:"Download models into the local cache"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Fuel model hosting command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Create a logger
	log, err := newLogger(cli.Debug)
	cmd.FatalIfErrorf(err)
	cli.Globals.log = log
	defer log.Sync()

	// Load the configuration
	var cfg *config.Config
	if cli.Config != "" {
		cfg, err = config.Load(cli.Config)
	} else {
		cfg, err = config.LoadDefault()
	}
	cmd.FatalIfErrorf(err)
	if cli.Cache != "" {
		cfg.Cache.Path = cli.Cache
	}

	// Transport options
	restopts := []rest.Opt{}
	if cli.Debug || cli.Verbose {
		restopts = append(restopts, rest.WithTrace(os.Stderr, cli.Verbose))
	}
	transport, err := rest.New(restopts...)
	cmd.FatalIfErrorf(err)

	// Create the client
	fuel, err := client.New(cfg, client.WithREST(transport), client.WithLogger(log))
	cmd.FatalIfErrorf(err)
	cli.Globals.client = fuel

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// Console logger on stderr, debug level when requested
func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
