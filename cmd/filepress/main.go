package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/filepress-io/filepress/config"
	"github.com/filepress-io/filepress/internal/core/domain"
	"github.com/filepress-io/filepress/internal/core/services/compressor"
	"github.com/filepress-io/filepress/pkg/errors"
	"github.com/filepress-io/filepress/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.New("filepress")
	defer log.Sync()

	if len(args) < 1 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "compress":
		return runCompress(log, args[1:])
	case "extract":
		return runExtract(log, args[1:])
	default:
		fmt.Fprintln(os.Stderr, "invalid operation:", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  filepress compress [flags] <file> <source-dir>")
	fmt.Println("  filepress extract <archive> [dest-dir]")
}

func runCompress(log *zap.SugaredLogger, args []string) int {
	flags := flag.NewFlagSet("compress", flag.ExitOnError)
	format := flags.String("format", "", "compression format: gzip or zip")
	level := flags.Int("level", -1, "compression level (0=store .. 9=max)")
	dest := flags.String("dest", "", "destination directory (default: current directory)")
	configPath := flags.String("config", "", "optional YAML config file")
	flags.Parse(args)

	if flags.NArg() != 2 {
		fmt.Println("Usage: filepress compress [flags] <file> <source-dir>")
		return 1
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Errorw("load config error", "error", err)
			return 1
		}
		cfg = loaded
	}

	// Explicit flags win over config values.
	requestFormat := cfg.Format()
	if *format != "" {
		parsed, ok := domain.ParseFormat(*format)
		if !ok {
			fmt.Fprintln(os.Stderr, "invalid format:", *format)
			return 1
		}
		requestFormat = parsed
	}

	requestLevel := cfg.Compression.Level
	if *level >= 0 {
		requestLevel = *level
	}

	destDir := cfg.DestinationPath
	if *dest != "" {
		destDir = *dest
	}

	comp, err := compressor.New(&compressor.Options{
		Logger:     log,
		BufferSize: cfg.Compression.BufferSize,
	})
	if err != nil {
		reportError(log, err)
		return 1
	}

	err = comp.Compress(domain.CompressionRequest{
		FileName:  flags.Arg(0),
		SourceDir: flags.Arg(1),
		DestDir:   destDir,
		Format:    requestFormat,
		Level:     requestLevel,
	})
	if err != nil {
		reportError(log, err)
		return 1
	}
	return 0
}

func runExtract(log *zap.SugaredLogger, args []string) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Println("Usage: filepress extract <archive> [dest-dir]")
		return 1
	}

	destDir := ""
	if len(args) == 2 {
		destDir = args[1]
	}

	comp, err := compressor.New(&compressor.Options{Logger: log})
	if err != nil {
		reportError(log, err)
		return 1
	}

	if err := comp.ExtractZip(args[0], destDir); err != nil {
		reportError(log, err)
		return 1
	}
	return 0
}

func reportError(log *zap.SugaredLogger, err error) {
	if errors.IsValidationError(err) {
		ve := errors.AsValidationError(err)
		log.Errorw("invalid input", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		return
	}
	log.Errorw("operation failed", "code", errors.Code(err), "error", err)
}
