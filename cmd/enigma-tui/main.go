package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-enigma/pkg/enigma"
	"github.com/dd0wney/cluso-enigma/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "enigma-tui: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configuration string
		random        bool
		logFile       string
	)

	cmd := &cobra.Command{
		Use:           "enigma-tui",
		Short:         "Type on an Enigma machine in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []enigma.Option{}
			switch {
			case configuration != "" && random:
				return fmt.Errorf("--configuration and --random-configuration cannot be combined")
			case configuration != "":
				opts = append(opts, enigma.WithConfiguration(configuration))
			case random:
				opts = append(opts, enigma.WithRandomConfiguration())
			}

			// the screen belongs to the program, so logs only go to a file
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				opts = append(opts, enigma.WithLogger(logging.NewJSONLogger(f, logging.DebugLevel)))
			}

			m, err := enigma.New(opts...)
			if err != nil {
				return err
			}

			p := tea.NewProgram(initialModel(m), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&configuration, "configuration", "c", "", "Starting configuration string")
	cmd.Flags().BoolVarP(&random, "random-configuration", "r", false, "Start from a random configuration")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write a debug trace of every key press to this file")

	return cmd
}
