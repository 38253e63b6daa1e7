package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/probe-group/finflags/internal/ingest"
	"github.com/probe-group/finflags/internal/model"
	"github.com/probe-group/finflags/internal/rules"
)

var (
	evaluateFile string
	evaluateJSON bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a statement file and print its flags",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := rules.ValidateConfig(cfg.Rules); err != nil {
			return err
		}

		rec, err := ingest.ReadRecordFile(evaluateFile)
		if err != nil {
			return eris.Wrap(err, "read statement")
		}

		result := rules.New(cfg.Rules).Evaluate(rec)

		zap.L().Info("statement evaluated",
			zap.String("file", evaluateFile),
			zap.Int("entries", len(rec.Financials)),
		)

		out := cmd.OutOrStdout()
		if evaluateJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		for _, name := range []string{
			model.FlagNameTotalRevenue,
			model.FlagNameBorrowingToRevenue,
			model.FlagNameISCR,
		} {
			fmt.Fprintf(out, "%-28s %s\n", name, result.Flags[name])
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateFile, "file", "", "path to statement file (.json or .xlsx, required)")
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "print the raw JSON result")
	_ = evaluateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(evaluateCmd)
}
