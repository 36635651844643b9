package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hesusruiz/vcutils/yaml"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/trois-six/ged-io-sub000/gedcom"
	"github.com/trois-six/ged-io-sub000/gedzip"
)

var debug bool

// writerConfig builds the serializer configuration from the YAML
// config file. All keys live under the "write" section:
//
//	write:
//	  lineEnding: lf | crlf
//	  maxLineLength: 255
//	  includeEmptyFields: false
//	  version: 5.5.1
func writerConfig(config *yaml.YAML) gedcom.WriterConfig {
	cfg := gedcom.WriterConfig{}
	if config == nil {
		return cfg
	}

	switch config.String("write.lineEnding", "lf") {
	case "crlf":
		cfg.LineEnding = "\r\n"
	default:
		cfg.LineEnding = "\n"
	}
	if v := config.String("write.maxLineLength", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			cfg.MaxLineLength = n
		}
	}
	cfg.IncludeEmptyFields = config.String("write.includeEmptyFields", "false") == "true"
	cfg.Version = config.String("write.version", "")
	return cfg
}

func isZipName(name string) bool {
	return strings.HasSuffix(name, ".gdz") || strings.HasSuffix(name, ".zip")
}

// load parses the input file, picking the container and parse mode from
// the flags and the file name.
func load(c *cli.Context, inputFileName string, sugar *zap.SugaredLogger) (*gedcom.Document, error) {
	if isZipName(inputFileName) {
		return gedzip.ParseFile(inputFileName)
	}

	if c.Bool("stream") {
		// Record-at-a-time parsing. The file must be UTF-8 already.
		file, err := os.Open(inputFileName)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		sr := gedcom.NewStreamReader(file)
		sr.SetLogger(sugar)
		return gedcom.CollectDocument(sr)
	}

	raw, err := os.ReadFile(inputFileName)
	if err != nil {
		return nil, err
	}
	src, err := gedcom.DecodeBytes(raw)
	if err != nil {
		return nil, err
	}
	return gedcom.ParseWithOptions(src, gedcom.Options{
		MaxInputSize: c.Int64("maxsize"),
		Logger:       sugar,
	})
}

func printStats(doc *gedcom.Document) {
	fmt.Printf("version:      %v\n", doc.Version())
	fmt.Printf("individuals:  %v\n", len(doc.Individuals))
	fmt.Printf("families:     %v\n", len(doc.Families))
	fmt.Printf("sources:      %v\n", len(doc.Sources))
	fmt.Printf("repositories: %v\n", len(doc.Repositories))
	fmt.Printf("media:        %v\n", len(doc.Media))
	fmt.Printf("submitters:   %v\n", len(doc.Submitters))
	fmt.Printf("submissions:  %v\n", len(doc.Submissions))
	fmt.Printf("shared notes: %v\n", len(doc.SharedNotes))
	fmt.Printf("custom:       %v\n", len(doc.Custom))
	fmt.Printf("total:        %v\n", doc.TotalRecords())
}

// process is the main entry point of the program
func process(c *cli.Context) error {

	debug = c.Bool("debug")

	var z *zap.Logger
	var err error

	// Setup the logging system
	if debug {
		z, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	} else {
		z, err = zap.NewProduction()
		if err != nil {
			panic(err)
		}
	}

	sugar := z.Sugar()
	defer sugar.Sync()

	if !c.Args().Present() {
		return cli.Exit("no input file provided", 1)
	}
	inputFileName := c.Args().First()

	// Read the optional YAML configuration
	var config *yaml.YAML
	if configFileName := c.String("config"); configFileName != "" {
		config, err = yaml.ParseYamlFile(configFileName)
		if err != nil {
			return err
		}
	}

	doc, err := load(c, inputFileName, sugar)
	if err != nil {
		return err
	}

	if c.Bool("stats") {
		printStats(doc)
	}

	if c.Bool("validate") {
		if err := doc.ValidateReferences(); err != nil {
			return err
		}
		fmt.Println("all cross-references resolve")
	}

	// Write the normalized output if requested
	outputFileName := c.String("output")
	if outputFileName == "" {
		return nil
	}
	cfg := writerConfig(config)
	if isZipName(outputFileName) {
		return gedzip.WriteFile(outputFileName, doc, cfg)
	}
	out := gedcom.NewWriter(cfg).Render(doc)
	return os.WriteFile(outputFileName, []byte(out), 0664)
}

func main() {

	app := &cli.App{
		Name:      "gedio",
		Version:   "v0.1",
		Compiled:  time.Now(),
		Usage:     "parse, validate and rewrite GEDCOM files",
		UsageText: "gedio [options] INPUT_FILE",
		Action:    process,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the normalized GEDCOM to `FILE` (.gdz or .zip for a zipped container)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read writer options from the YAML `FILE`",
			},
			&cli.BoolFlag{
				Name:    "stats",
				Aliases: []string{"s"},
				Usage:   "print record counts",
			},
			&cli.BoolFlag{
				Name:  "validate",
				Usage: "check that all cross-references resolve",
			},
			&cli.BoolFlag{
				Name:  "stream",
				Usage: "parse one record at a time, for very large files",
			},
			&cli.Int64Flag{
				Name:  "maxsize",
				Usage: "reject inputs larger than `BYTES`",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		panic(err)
	}

}
