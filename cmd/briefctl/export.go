package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brieffast/brieffast-server/internal/pdf"
)

func init() {
	var inPath, themeName, title, outPath, logoPath string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a Markdown brief to a themed PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}

			theme := pdf.DefaultTheme
			if themeName != "" {
				t, ok := pdf.ThemeByName(themeName)
				if !ok {
					return fmt.Errorf("unknown theme %q", themeName)
				}
				theme = t
			}

			var logo []byte
			if logoPath != "" {
				if logo, err = os.ReadFile(logoPath); err != nil {
					return err
				}
			}

			r := &pdf.Renderer{Theme: theme, Logo: logo, Compress: true}
			doc, err := r.Render(title, string(md))
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = pdf.SafeFilename(title)
			}
			if err := os.WriteFile(outPath, doc.Bytes, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "wrote %s (%d pages)\n", outPath, doc.Pages)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&inPath, "in", "i", "", "Markdown input file (required)")
	exportCmd.Flags().StringVarP(&themeName, "theme", "t", "", "Theme name (default light)")
	exportCmd.Flags().StringVar(&title, "title", "Marketing Brief", "Document title")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output PDF path (default derived from title)")
	exportCmd.Flags().StringVar(&logoPath, "logo", "", "Optional PNG logo for the page header")
	_ = exportCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(exportCmd)
}
