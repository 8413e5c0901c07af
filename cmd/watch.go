package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/hlin/formatter"
	tt "github.com/gnolang/hlin/internal/types"
	"github.com/gnolang/hlin/lint"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-check dump files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directories to watch")
			os.Exit(1)
		}

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		err = engine.Watch(args, func(filename string, issues []tt.Issue) {
			if len(issues) == 0 {
				fmt.Printf("%s: clean\n", filename)
				return
			}
			fmt.Print(formatter.Format(issues))
		})
		if err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer engine.StopWatching()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	},
}
