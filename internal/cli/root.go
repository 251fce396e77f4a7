package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mdpress/internal/document"
	"mdpress/internal/export"
	"mdpress/internal/markdown"
	"mdpress/internal/pdf"
	"mdpress/internal/service"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c string) {
	version = v
	commit = c
}

// options are the global flags shared by every command.
type options struct {
	anchors    string
	pdfURL     string
	pdfTimeout time.Duration
	debug      bool
}

// NewRootCmd builds the mdpress command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mdpress",
		Short: "Render and export Markdown documents",
		Long: `mdpress renders Markdown with math-friendly escaping, groups the result
into sections by level-1 heading and exports it as a standalone HTML page
or, through a remote rendering service, as PDF.

Every command reads a Markdown file, or stdin when the file is "-".

Environment Variables:
  PDF_SERVICE_URL  Rendering service used by "mdpress pdf"
  ANCHOR_POLICY    suffix (default) or preserve`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("mdpress version %s (commit: %s)\n", version, commit))

	root.PersistentFlags().StringVar(&opts.anchors, "anchors", envOr("ANCHOR_POLICY", string(document.AnchorSuffix)), "Duplicate anchor policy (suffix|preserve)")
	root.PersistentFlags().StringVar(&opts.pdfURL, "url", envOr("PDF_SERVICE_URL", pdf.DefaultServiceURL), "PDF rendering service URL")
	root.PersistentFlags().DurationVar(&opts.pdfTimeout, "timeout", 0, "PDF request timeout (0 = no timeout)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newHTMLCmd(opts),
		newPDFCmd(opts),
		newTOCCmd(opts),
		newPreviewCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// documentService wires the rendering stack for one command run.
func (o *options) documentService() (service.DocumentService, error) {
	policy, err := document.ParseAnchorPolicy(o.anchors)
	if err != nil {
		return nil, err
	}
	return service.NewDocumentService(
		markdown.NewRenderer(),
		pdf.NewClient(o.pdfURL, o.pdfTimeout),
		policy,
	), nil
}

// readInputSource reads content from a file path or stdin when source is "-".
func readInputSource(source string, stdin io.Reader) (string, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return "", fmt.Errorf("empty input source")
	}

	var r io.Reader
	if trimmed == "-" {
		if stdin != nil {
			r = stdin
		} else {
			r = os.Stdin
		}
	} else {
		file, err := os.Open(trimmed)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", trimmed, err)
		}
		defer file.Close()
		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// defaultName derives an export name from the input path.
func defaultName(source string) string {
	if source == "-" {
		return export.DefaultFilename
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
