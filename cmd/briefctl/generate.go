package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brieffast/brieffast-server/internal/model"
	"github.com/brieffast/brieffast-server/internal/services"
)

func init() {
	var templateID, answersPath, outPath string

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a questionnaire answers file to a Markdown brief",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(answersPath)
			if err != nil {
				return err
			}
			var answers model.AnswerSet
			if err := json.Unmarshal(raw, &answers); err != nil {
				return fmt.Errorf("invalid answers file: %w", err)
			}

			md, err := services.NewGeneratorService().Generate(context.Background(), templateID, answers)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = fmt.Fprint(os.Stdout, md)
				return err
			}
			return os.WriteFile(outPath, []byte(md), 0o644)
		},
	}
	generateCmd.Flags().StringVarP(&templateID, "template", "t", "", "Template ID (required)")
	generateCmd.Flags().StringVarP(&answersPath, "answers", "f", "", "Answers JSON file (required)")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	_ = generateCmd.MarkFlagRequired("template")
	_ = generateCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(generateCmd)
}
