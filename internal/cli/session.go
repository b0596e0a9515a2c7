package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/editor"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	goldmarkparser "github.com/yaklabco/gomdedit/pkg/parser/goldmark"
	"github.com/yaklabco/gomdedit/pkg/parser/markdown"
	"github.com/yaklabco/gomdedit/pkg/render"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// session is the resolved per-invocation state: configuration, logger and
// output styling.
type session struct {
	cfg    *config.Config
	result *configloader.LoadResult
	logger *log.Logger
	styles *pretty.Styles
	out    io.Writer
	in     io.Reader
	width  int
}

// loadSession resolves configuration for cmd. Flags explicitly set on the
// command line override every config layer; override may add
// command-specific values such as the output format. The session logger is
// also attached to the command context.
func loadSession(cmd *cobra.Command, flags *globalFlags, override func(*config.Config)) (*session, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cliCfg := &config.Config{
		Parser: config.ParserConfig{Flavor: config.Flavor(flags.flavor)},
		Color:  config.ColorMode(flags.color),
	}
	if flags.debug {
		cliCfg.LogLevel = config.LogLevelDebug
	}
	if override != nil {
		override(cliCfg)
	}

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        flags.configPath,
		IgnoreSystemConfig:  flags.noConfig,
		IgnoreUserConfig:    flags.noConfig,
		IgnoreProjectConfig: flags.noConfig,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	cfg := result.Config
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), string(cfg.LogLevel))
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	for _, w := range result.Warnings {
		logger.Warn("config warning", "message", w)
	}
	logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldConfig, strings.Join(result.LoadedFrom, ","),
		logging.FieldFlavor, cfg.Parser.Flavor,
	)

	out := cmd.OutOrStdout()
	return &session{
		cfg:    cfg,
		result: result,
		logger: logger,
		styles: pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out)),
		out:    out,
		in:     cmd.InOrStdin(),
		width:  pretty.TerminalWidth(out),
	}, nil
}

// parser returns the parser selected by the configured flavor.
//
//nolint:ireturn // Both parser implementations satisfy editor.Parser.
func (s *session) parser() editor.Parser {
	switch s.cfg.Parser.Flavor {
	case config.FlavorGoldmark, config.FlavorGFM:
		return goldmarkparser.New(string(s.cfg.Parser.Flavor), goldmarkparser.WithLogger(s.logger))
	default:
		return markdown.New(markdown.WithLogger(s.logger))
	}
}

// newEditor creates an editor wired to the configured parser and classes.
func (s *session) newEditor() *editor.Editor {
	r := s.cfg.Render
	return editor.New(
		editor.WithParser(s.parser()),
		editor.WithLogger(s.logger),
		editor.WithRenderOptions(
			render.WithClasses(render.Classes{
				Syntax:  r.SyntaxClass,
				Visible: r.VisibleClass,
				Hidden:  r.HiddenClass,
			}),
			render.WithLanguageDetection(r.DetectEnabled()),
		),
	)
}

// input is a document source read from a file or standard input.
type input struct {
	name    string
	content []byte
	// info is nil for standard input.
	info *fsutil.FileInfo
}

// readInput reads arg, or standard input when arg is empty or "-".
func (s *session) readInput(ctx context.Context, arg string) (*input, error) {
	if arg == "" || arg == stdinArg {
		content, err := io.ReadAll(s.in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return &input{name: "<stdin>", content: content}, nil
	}

	content, info, err := fsutil.ReadFile(ctx, arg)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("read input", logging.FieldInput, arg, logging.FieldSize, len(content))
	return &input{name: arg, content: content, info: info}, nil
}

// isJSON reports whether the input holds a JSON document rather than
// markdown: by extension for files, by content for standard input.
func (in *input) isJSON() bool {
	if in.info != nil {
		return strings.EqualFold(filepath.Ext(in.name), ".json")
	}
	trimmed := bytes.TrimSpace(in.content)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// load feeds the input into ed as markdown or JSON.
func (in *input) load(ed *editor.Editor) error {
	if in.isJSON() {
		if err := ed.LoadJSON(in.content); err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		return nil
	}
	return ed.Load(string(in.content))
}

// writeOutput writes content to path atomically, or to the command output
// when path is empty.
func (s *session) writeOutput(ctx context.Context, path, content string) error {
	if path == "" || path == stdinArg {
		_, err := io.WriteString(s.out, content)
		return err
	}
	if err := fsutil.WriteAtomic(ctx, path, []byte(content), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	s.logger.Debug("wrote output", logging.FieldOutput, path, logging.FieldSize, len(content))
	return nil
}

// format renders the editor's document in the requested output format.
// cursor, when set, drives syntax visibility in html and highlighting in
// tree output.
func (s *session) format(ed *editor.Editor, format config.OutputFormat, ranges bool) (string, error) {
	switch format {
	case config.FormatJSON:
		return indentJSON(ed)
	case config.FormatHTML:
		markup, err := ed.Markup()
		if err != nil {
			return "", err
		}
		return markup + "\n", nil
	case config.FormatTree:
		var cursor *int
		if pos, ok := ed.Cursor(); ok {
			cursor = &pos
		}
		return s.styles.FormatTree(ed.Doc(), pretty.TreeOptions{
			Ranges: ranges,
			Cursor: cursor,
			Width:  s.width,
		}), nil
	default:
		return withNewline(ed.Markdown()), nil
	}
}

// withNewline terminates non-empty markdown with a newline, as files on
// disk conventionally are.
func withNewline(md string) string {
	if md == "" || strings.HasSuffix(md, "\n") {
		return md
	}
	return md + "\n"
}

// indentJSON encodes the editor's document as indented JSON.
func indentJSON(ed *editor.Editor) (string, error) {
	data, err := ed.JSON()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

// argOrStdin returns the first argument, or "-" when there is none.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return stdinArg
	}
	return args[0]
}

// formatOverride returns a config override for an explicitly set --format
// flag, or nil when the flag was not given.
func formatOverride(cmd *cobra.Command, value string) (func(*config.Config), error) {
	if !cmd.Flags().Changed("format") {
		return nil, nil //nolint:nilnil // No override is not an error.
	}
	format, err := config.ParseOutputFormat(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return func(c *config.Config) { c.Format = format }, nil
}
