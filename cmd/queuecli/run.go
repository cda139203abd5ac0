package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalouivi/oop-exercise-05/internal/logging"
	"github.com/vitalouivi/oop-exercise-05/internal/script"
	"github.com/vitalouivi/oop-exercise-05/pkg/containers"
)

var (
	scriptFile string
	logLevel   string
	keepGoing  bool
)

var rootCmd = &cobra.Command{
	Use:   "queuecli [op...]",
	Short: "Run queue operations and print the results",
	Long: `Runs operations against an in-memory queue of strings.

Operations: push:V pop top len print delete:N insert:N:V`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(logLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ops, err := getOperations(args)
		if err != nil {
			log.Error("failed to read operations", logging.Error(err))
			return err
		}

		ctx := log.GetContext(cmd.Context())
		q := containers.New[string](containers.WithLogger(log.Zap()))

		runner := script.Runner{
			Out:       cmd.OutOrStdout(),
			KeepGoing: keepGoing,
		}
		if err := runner.Run(ctx, q, ops); err != nil {
			return err
		}

		log.Info("done", logging.Int("length", q.Length()))
		return nil
	},
}

func getOperations(args []string) ([]script.Op, error) {
	if scriptFile == "" {
		return script.Parse(args)
	}

	f, err := os.Open(scriptFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ops, err := script.ParseJSON(f)
	if err != nil {
		return nil, err
	}

	extra, err := script.Parse(args)
	if err != nil {
		return nil, err
	}

	return append(ops, extra...), nil
}

func init() {
	rootCmd.Flags().StringVar(&scriptFile, "script", "", "JSON file with operations to run before the arguments")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "run every operation even after a failure")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
