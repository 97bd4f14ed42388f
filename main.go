package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/mcncl/ontoline/internal/config"
	"github.com/mcncl/ontoline/internal/document"
	"github.com/mcncl/ontoline/internal/errors"
	"github.com/mcncl/ontoline/internal/logger"
	"github.com/mcncl/ontoline/internal/models"
	"github.com/mcncl/ontoline/internal/parser"
	"github.com/mcncl/ontoline/internal/render"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Source      string `help:"Path to plain-text source document to match values against." short:"s" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Format      string `help:"Output format." short:"f" enum:"outline,json,csv" default:"outline"`
	Name        string `help:"Document name used in logs and reports. Defaults to the input file name." short:"n"`
	Path        string `help:"JSONPath expression selecting the sub-document to outline." short:"p"`
	Config      string `help:"Path to config file. If not specified, searches for .ontoline.yml upward." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Log    zerolog.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kongParser := kong.Must(&CLI,
		kong.Name("ontoline"),
		kong.Description("A tool to view and edit JSON documents as flat outlines matched against a source text"),
		kong.UsageOnError(),
	)

	// No arguments means interactive paste mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := kongParser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("ontoline version %s\n", Version)
		return
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Format, CLI.Name, CLI.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	log := logger.New(logger.Config{Debug: CLI.Debug || cfg.Dev.Debug})

	if err := run(&Context{Config: cfg, Log: log}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: ontoline --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse JSON input
	root, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. Optionally narrow to a sub-document
	if CLI.Path != "" {
		root, err = parser.Select(root, CLI.Path)
		if err != nil {
			return err
		}
		ctx.Log.Debug().Str("path", CLI.Path).Msg("selected sub-document")
	}

	// 3. Flatten into the editable outline form
	name := ctx.Config.Name
	if name == "" {
		name = document.DefaultName(CLI.Input)
	}
	doc := document.Load(name, root)
	ctx.Log.Debug().Str("document", doc.Name).Int("rows", len(doc.Nodes)).Msg("flattened document")

	// 4. Match against the source text, if one was given
	if ctx.Config.Source != "" {
		text, err := parser.ReadSourceFile(ctx.Config.Source)
		if err != nil {
			return err
		}
		doc.SetSource(text)
		ctx.Log.Debug().Str("source", ctx.Config.Source).Int("bytes", len(text)).Msg("matched against source")
	}

	// 5. Render the requested format
	renderer := render.NewRenderer()
	renderer.ShowMatch = ctx.Config.Render.ShowMatch
	out, err := renderer.Render(doc, ctx.Config.Format)
	if err != nil {
		return err
	}

	// 6. Output the result
	return writeOutput(out)
}

// parseInput reads JSON from file or stdin
func parseInput() (models.JSONValue, error) {
	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the rendered document to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(out), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSuffix(out, "\n"))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.JSONValue, error) {
	fmt.Fprintln(os.Stderr, "Ontoline Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
