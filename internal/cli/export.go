package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mdpress/internal/service"
)

type exportFlags struct {
	name   string
	dir    string
	stdout bool
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "output", "o", "", "Output filename without extension (default: input name)")
	cmd.Flags().StringVar(&f.dir, "dir", ".", "Directory to write the export to")
	cmd.Flags().BoolVar(&f.stdout, "stdout", false, "Write the export to stdout instead of a file")
}

// filename returns the requested name. An explicitly empty -o is passed on
// so the service can reject it.
func (f *exportFlags) filename(cmd *cobra.Command, source string) string {
	if cmd.Flags().Changed("output") {
		return f.name
	}
	return defaultName(source)
}

func (f *exportFlags) write(cmd *cobra.Command, result service.ExportResult) error {
	if f.stdout {
		_, err := cmd.OutOrStdout().Write(result.Body)
		return err
	}
	path := filepath.Join(f.dir, result.Filename)
	if err := os.WriteFile(path, result.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(result.Body))
	return nil
}

func newHTMLCmd(opts *options) *cobra.Command {
	flags := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "html <file>",
		Short: "Export a document as a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInputSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc, err := opts.documentService()
			if err != nil {
				return err
			}
			result, err := svc.ExportHTML(cmd.Context(), service.ExportRequest{
				Markdown: text,
				Filename: flags.filename(cmd, args[0]),
			})
			if err != nil {
				return userError(err)
			}
			return flags.write(cmd, result)
		},
	}
	flags.register(cmd)
	return cmd
}

func newPDFCmd(opts *options) *cobra.Command {
	flags := &exportFlags{}
	var engine, cssFile string
	cmd := &cobra.Command{
		Use:   "pdf <file>",
		Short: "Export a document as PDF through the rendering service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInputSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			var css string
			if cssFile != "" {
				data, err := os.ReadFile(cssFile)
				if err != nil {
					return fmt.Errorf("failed to read stylesheet: %w", err)
				}
				css = string(data)
			}
			svc, err := opts.documentService()
			if err != nil {
				return err
			}
			result, err := svc.ExportPDF(cmd.Context(), service.PDFRequest{
				Markdown: text,
				Filename: flags.filename(cmd, args[0]),
				Engine:   engine,
				CSS:      css,
			})
			if err != nil {
				return userError(err)
			}
			return flags.write(cmd, result)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&engine, "engine", "", "PDF engine requested from the service")
	cmd.Flags().StringVar(&cssFile, "css", "", "Stylesheet file sent with the document")
	return cmd
}

// userError turns service errors into messages fit for a terminal.
func userError(err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("%s: %s", validationErr.Field, validationErr.Message)
	}
	if errors.Is(err, service.ErrExternalService) {
		return fmt.Errorf("export failed, the rendering service did not answer: %w", err)
	}
	return err
}
