// Command jagdcalc is a thin reference CLI around the ballistics core: it
// loads a TOML session file, resolves logging, and prints a drop table.
// It owns every concern the pure core deliberately does not: I/O, config,
// and logging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "jagdcalc",
		Short: "Rifle trajectory calculator for hunting (ballistics core CLI)",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newCalcCmd(&logLevel))
	root.AddCommand(newPressureCmd())
	return root
}
