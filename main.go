package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/chronoarc/marvel-go/internal/analyzer"
	"github.com/chronoarc/marvel-go/internal/codec"
	"github.com/chronoarc/marvel-go/internal/config"
	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/formatter"
	"github.com/chronoarc/marvel-go/internal/generator"
	"github.com/chronoarc/marvel-go/internal/logger"
	"github.com/chronoarc/marvel-go/internal/models"
	"github.com/chronoarc/marvel-go/internal/parser"
	"github.com/chronoarc/marvel-go/internal/schema"
	"github.com/chronoarc/marvel-go/marvel"
)

// Version information
const (
	Version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Config   string        `help:"Path to a config file. Defaults to the nearest .marvel.yml." short:"c" type:"path"`
	BaseURL  string        `help:"Base URL of the API." name:"base-url"`
	Timeout  time.Duration `help:"HTTP request timeout."`
	LogLevel string        `help:"Log level (debug, info, warn, error)." name:"log-level"`
	Debug    bool          `help:"Enable debug logging." short:"d"`
	Schema   []string      `help:"YAML type definition file to register. Repeatable." type:"path"`
	Compact  bool          `help:"Print JSON without indentation."`

	Decode   DecodeCmd   `cmd:"" help:"Decode a JSON payload into a registered type and print it normalized."`
	Types    TypesCmd    `cmd:"" help:"List registered types with their resolved field types."`
	Fetch    FetchCmd    `cmd:"" help:"Fetch a resource from the API and print the decoded response."`
	Infer    InferCmd    `cmd:"" help:"Infer YAML type definitions from a sample JSON payload."`
	Generate GenerateCmd `cmd:"" help:"Generate Go types from YAML type definitions."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// Context holds the runtime context shared by every command
type Context struct {
	Config *config.Config
	Logger zerolog.Logger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: marvel-go --help\n")
		os.Exit(1)
	}
}

// run parses args, loads the configuration and executes the selected command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("marvel-go"),
		kong.Description("Typed client and JSON mapper for the Marvel Comics API"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return errors.NewInputError("invalid command line", err)
	}

	overrides := config.Overrides{
		BaseURL:  cli.BaseURL,
		Timeout:  cli.Timeout,
		LogLevel: cli.LogLevel,
		Schemas:  cli.Schema,
		Compact:  cli.Compact,
	}
	if cli.Debug {
		overrides.LogLevel = "debug"
	}
	cfg, err := config.LoadConfigWithCLI(cli.Config, overrides)
	if err != nil {
		return err
	}

	logOut := stderr
	if strings.EqualFold(cfg.Log.Output, "stdout") {
		logOut = stdout
	}

	return kctx.Run(&Context{
		Config: cfg,
		Logger: logger.NewWithWriter(cfg.Log, logOut),
		In:     stdin,
		Out:    stdout,
		Err:    stderr,
	})
}

// DecodeCmd decodes a JSON document into a registered type.
type DecodeCmd struct {
	Type  string `help:"Type to decode into, e.g. ComicDataWrapper or comic-data-wrapper." short:"t" required:""`
	Input string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
}

func (c *DecodeCmd) Run(ctx *Context) error {
	cd, err := ctx.codec()
	if err != nil {
		return err
	}

	ir, err := parseInput(c.Input, ctx.In)
	if err != nil {
		return err
	}

	typeName := strcase.ToCamel(c.Type)
	ctx.Logger.Debug().Str("type", typeName).Msg("decoding payload")

	obj, err := cd.FromJSON(ir.Root, typeName)
	if err != nil {
		return err
	}
	return ctx.printObject(cd, obj)
}

// TypesCmd lists registered types.
type TypesCmd struct {
	Names []string `arg:"" optional:"" help:"Types to show. Lists every type if empty."`
}

func (c *TypesCmd) Run(ctx *Context) error {
	cd, err := ctx.codec()
	if err != nil {
		return err
	}
	reg := cd.Registry()

	names := reg.Types()
	if len(c.Names) > 0 {
		names = make([]string, len(c.Names))
		for i, n := range c.Names {
			names[i] = strcase.ToCamel(n)
		}
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fields, err := reg.Resolve(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\n", name)
		for _, f := range fields {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", strcase.ToCamel(f.Name), f.WireName, f.Kind)
		}
	}
	if len(c.Names) == 0 {
		for _, name := range reg.Enums() {
			e, _ := reg.LookupEnum(name)
			fmt.Fprintf(tw, "enum %s\t%s\n", name, strings.Join(quoted(e.Values), ", "))
		}
	}
	if err := tw.Flush(); err != nil {
		return errors.NewOutputError("failed to write type listing", err)
	}
	return nil
}

// collections maps API collections to the wrapper type of their responses.
var collections = map[string]string{
	"characters": "CharacterDataWrapper",
	"comics":     "ComicDataWrapper",
	"creators":   "CreatorDataWrapper",
	"events":     "EventDataWrapper",
	"series":     "SeriesDataWrapper",
	"stories":    "StoryDataWrapper",
}

// FetchCmd requests a collection, an entity or a sub-collection.
type FetchCmd struct {
	Resource string            `arg:"" enum:"characters,comics,creators,events,series,stories" help:"Collection to fetch."`
	ID       int               `arg:"" optional:"" help:"Entity id."`
	Sub      string            `arg:"" optional:"" help:"Sub-collection of the entity, e.g. comics."`
	Param    map[string]string `short:"p" help:"Query parameter, e.g. -p limit=5. Repeatable."`
}

func (c *FetchCmd) Run(ctx *Context) error {
	endpoint, typeName, err := c.endpoint()
	if err != nil {
		return err
	}

	cd, err := ctx.codec()
	if err != nil {
		return err
	}

	client := marvel.NewClient(
		marvel.WithBaseURL(ctx.Config.BaseURL),
		marvel.WithTimeout(ctx.Config.Timeout),
		marvel.WithStaticQuery(ctx.Config.Query()),
		marvel.WithCodec(cd),
		marvel.WithLogger(ctx.Logger),
	)

	query := make(url.Values, len(c.Param))
	for k, v := range c.Param {
		query.Set(k, v)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	body, err := client.Raw(sigCtx, endpoint, query)
	if err != nil {
		return err
	}
	obj, err := cd.Unmarshal(body, typeName)
	if err != nil {
		return err
	}
	return ctx.printObject(cd, obj)
}

// endpoint returns the request path and the type its response decodes into.
func (c *FetchCmd) endpoint() (string, string, error) {
	typeName, ok := collections[c.Resource]
	if !ok {
		return "", "", errors.NewInputError(fmt.Sprintf("unknown resource %q", c.Resource), nil)
	}
	if c.ID == 0 {
		if c.Sub != "" {
			return "", "", errors.NewInputError("a sub-collection needs an entity id", nil)
		}
		return "/" + c.Resource, typeName, nil
	}
	if c.Sub == "" {
		return fmt.Sprintf("/%s/%d", c.Resource, c.ID), typeName, nil
	}
	subType, ok := collections[c.Sub]
	if !ok || c.Sub == c.Resource {
		return "", "", errors.NewInputError(fmt.Sprintf("%s have no %q sub-collection", c.Resource, c.Sub), nil)
	}
	return fmt.Sprintf("/%s/%d/%s", c.Resource, c.ID, c.Sub), subType, nil
}

// InferCmd writes YAML definitions inferred from a sample payload.
type InferCmd struct {
	Input  string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output string `help:"Path to output YAML file. If not specified, writes to stdout." short:"o" type:"path"`
	Root   string `help:"Name for the root type." short:"r" default:"Root"`
}

func (c *InferCmd) Run(ctx *Context) error {
	ir, err := parseInput(c.Input, ctx.In)
	if err != nil {
		return err
	}

	defs, err := analyzer.NewAnalyzer().Analyze(ir, c.Root)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(defs)
	if err != nil {
		return errors.NewOutputError("failed to encode type definitions", err)
	}
	return ctx.writeOutput(c.Output, data, "Type definitions")
}

// GenerateCmd renders YAML definitions as Go source.
type GenerateCmd struct {
	Definitions string `arg:"" help:"YAML type definition file." type:"existingfile"`
	Package     string `help:"Package name for generated code. The code imports the marvel package, so it cannot be marvel itself." short:"p" default:"catalog"`
	Output      string `help:"Path to output Go file. If not specified, writes to stdout." short:"o" type:"path"`
	Format      bool   `help:"Format the output code according to Go standards." short:"f" default:"true" negatable:""`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	defs, err := schema.LoadDefinitions(c.Definitions)
	if err != nil {
		return err
	}

	code, err := generator.NewGenerator().Generate(defs, c.Package)
	if err != nil {
		return err
	}

	if c.Format {
		code, err = formatter.NewFormatter().Format(code)
		if err != nil {
			return err
		}
	}
	return ctx.writeOutput(c.Output, []byte(code), "Generated Go code")
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.Out, "marvel-go version %s\n", Version)
	return err
}

// codec builds a codec over the built-in types plus the configured schemas.
func (ctx *Context) codec() (*codec.Codec, error) {
	reg := marvel.NewRegistry()
	for _, path := range ctx.Config.Schemas {
		defs, err := schema.LoadDefinitions(path)
		if err != nil {
			return nil, err
		}
		if err := defs.RegisterInto(reg); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to register definitions from '%s'", path), err)
		}
		ctx.Logger.Debug().Str("path", path).Int("types", len(defs.Types)).Msg("registered type definitions")
	}
	return codec.New(reg), nil
}

// printObject writes the normalized JSON form of obj.
func (ctx *Context) printObject(cd *codec.Codec, obj schema.Object) error {
	data, err := cd.Marshal(obj)
	if err != nil {
		return err
	}
	if !ctx.Config.Output.Compact {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return errors.NewOutputError("failed to indent JSON", err)
		}
		data = buf.Bytes()
	}
	if _, err := fmt.Fprintln(ctx.Out, string(data)); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// writeOutput writes data to path, or to stdout if path is empty.
func (ctx *Context) writeOutput(path string, data []byte, what string) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
		}
		fmt.Fprintf(ctx.Err, "%s written to %s\n", what, path)
		return nil
	}

	if _, err := fmt.Fprintln(ctx.Out, strings.TrimSpace(string(data))); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// parseInput reads JSON from a file, or from in when path is empty.
func parseInput(path string, in io.Reader) (models.IntermediateRepresentation, error) {
	if path != "" {
		return parser.ParseFile(path)
	}

	if f, ok := in.(*os.File); ok {
		info, err := f.Stat()
		if err != nil {
			return models.IntermediateRepresentation{}, errors.NewInputError("failed to access stdin", err)
		}
		if info.Mode()&os.ModeCharDevice != 0 {
			return models.IntermediateRepresentation{}, errors.NewInputError("no input provided", errors.ErrNoInput)
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read from stdin", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return parser.ParseBytes(data)
}

func quoted(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}
