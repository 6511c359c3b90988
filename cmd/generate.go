package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/routesim/vrptw/config"
	"github.com/routesim/vrptw/core/instance"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Sample a batch of problem instances and write them as JSON",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gen, err := instance.New(cfg.Generator)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	batch := gen.Batch()

	out := cmd.OutOrStdout()
	if generateOut != "" {
		f, err := os.Create(generateOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "close output: %v\n", cerr)
			}
		}()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(batch)
}
