package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mdpress/internal/document"
	"mdpress/internal/export"
)

// Output formats of the toc command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newTOCCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "toc <file>",
		Short: "Print the table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			text, err := readInputSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc, err := opts.documentService()
			if err != nil {
				return err
			}
			toc, err := svc.TOC(cmd.Context(), text)
			if err != nil {
				return err
			}
			return writeTOC(cmd.OutOrStdout(), toc, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text|json|yaml)")
	return cmd
}

func writeTOC(w io.Writer, toc document.TOC, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toc); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(toc) == 0 {
		_, err := fmt.Fprintln(w, export.NoHeadingsPlaceholder)
		return err
	}
	for _, entry := range toc {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", entry.Href(), entry.Text); err != nil {
			return err
		}
	}
	return nil
}
