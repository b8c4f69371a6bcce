package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// CLI wires the cobra command tree to an output writer.
type CLI struct {
	out     io.Writer
	cfgPath string
	rootCmd *cobra.Command
}

type Options struct {
	Output io.Writer
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{out: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "loancalc",
		Short:         "Loan EMI and amortization calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.out)
	cmd.SetErr(cli.out)

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "",
		"Path to a YAML config file (defaults and LOANCALC_* env vars otherwise)")

	cmd.AddCommand(cli.newServeCmd())
	cmd.AddCommand(cli.newEmiCmd())
	cmd.AddCommand(cli.newScheduleCmd())
	cmd.AddCommand(cli.newRecommendCmd())

	return cmd
}
