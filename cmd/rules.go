package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hlin/lint"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered rules and their patterns",
	Run: func(cmd *cobra.Command, _ []string) {
		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		for _, r := range engine.Rules() {
			fmt.Printf("%s [%s/%s]\n", r.Name, r.Category, r.Severity)
			fmt.Printf("    %s\n", r.Message)
			fmt.Printf("    pattern: %s\n", r.Pattern)
		}
	},
}
