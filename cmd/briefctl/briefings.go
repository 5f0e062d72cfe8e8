package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brieffast/brieffast-server/client"
	"github.com/brieffast/brieffast-server/internal/model"
)

func init() {
	briefingsCmd := &cobra.Command{Use: "briefings", Short: "Briefing operations against a running service"}

	printJSON := func(v interface{}) error {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	readData := func(path string) (*model.BriefingData, error) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var data model.BriefingData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("invalid data file: %w", err)
		}
		return &data, nil
	}

	// create
	var category, dataPath string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a briefing from a data JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(dataPath)
			if err != nil {
				return err
			}
			b, err := client.New(apiFlag, keyFlag).CreateBriefing(context.Background(), category, *data)
			if err != nil {
				return err
			}
			return printJSON(b)
		},
	}
	createCmd.Flags().StringVarP(&category, "category", "c", "", "Template category (required)")
	createCmd.Flags().StringVarP(&dataPath, "data", "d", "", "Data JSON file with answers and markdown (required)")
	_ = createCmd.MarkFlagRequired("category")
	_ = createCmd.MarkFlagRequired("data")
	briefingsCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get BRIEFING_ID",
		Short: "Fetch a briefing by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := client.New(apiFlag, keyFlag).GetBriefing(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(b)
		},
	}
	briefingsCmd.AddCommand(getCmd)

	// update
	var updatePath string
	updateCmd := &cobra.Command{
		Use:   "update BRIEFING_ID",
		Short: "Replace a briefing's data payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(updatePath)
			if err != nil {
				return err
			}
			b, err := client.New(apiFlag, keyFlag).UpdateBriefing(context.Background(), args[0], *data)
			if err != nil {
				return err
			}
			return printJSON(b)
		},
	}
	updateCmd.Flags().StringVarP(&updatePath, "data", "d", "", "Data JSON file with answers and markdown (required)")
	_ = updateCmd.MarkFlagRequired("data")
	briefingsCmd.AddCommand(updateCmd)

	rootCmd.AddCommand(briefingsCmd)
}
