package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hlin/formatter"
	tt "github.com/gnolang/hlin/internal/types"
	"github.com/gnolang/hlin/lint"
)

var (
	ignoreRules     string
	checkJSONOutput bool
	outPath         string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run all rules against the given tree dumps",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide dump file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		issues, err := lint.ProcessFiles(ctx, logger, engine, args, lint.ProcessFile)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		printIssues(issues, checkJSONOutput, outPath)

		if len(issues) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output issues in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func printIssues(issues []tt.Issue, asJSON bool, jsonPath string) {
	if !asJSON {
		fmt.Print(formatter.Format(issues))
		return
	}

	out, err := formatter.JSON(issues)
	if err != nil {
		logger.Error("Error marshaling issues to JSON", zap.Error(err))
		os.Exit(1)
	}
	if jsonPath == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(jsonPath, out, 0o644); err != nil {
		logger.Error("Error writing JSON output", zap.String("path", jsonPath), zap.Error(err))
		os.Exit(1)
	}
}
