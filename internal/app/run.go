// Package app implements the git-pr command.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"gitpr/internal/config"
	"gitpr/internal/sys"
	"gitpr/internal/vcs"
)

var (
	// osExit is a variable to allow mocking os.Exit in tests.
	osExit = os.Exit
	// getenv is a variable to allow mocking os.Getenv in tests.
	getenv = os.Getenv
	// loadConfig is a variable to allow mocking the config file in tests.
	loadConfig = config.LoadDefault
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version    string
	CommitHash string
}

func (b BuildInfo) String() string {
	if b.CommitHash != "" {
		return fmt.Sprintf("%s-%s", b.Version, b.CommitHash)
	}
	return b.Version
}

type cliFlags struct {
	push, copy, open bool
	version, help    bool
	verbose          bool
}

func newRootCmd(info BuildInfo, prog string) *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:   prog + " [flags] [gh pr create flags]",
		Short: "Compose a GitHub pull request in your editor",
		Long:  longHelp,
		Args:  cobra.ArbitraryArgs,
		// Unknown flags belong to gh, so parsing is done in RunE.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			known, forward := SplitArgs(cmd.Flags(), args)
			if err := cmd.Flags().Parse(known); err != nil {
				return err
			}
			if f.help {
				return cmd.Help()
			}
			if f.version {
				return handleVersion(cmd, info)
			}
			return handleSubmit(cmd, f, forward)
		},
	}

	cmd.SetOut(sys.Stdout)
	cmd.SetErr(sys.Stderr)

	fs := cmd.Flags()
	fs.BoolVarP(&f.push, FlagPush, "P", false, "Push the current branch to origin before creating the pull request")
	fs.BoolVarP(&f.copy, FlagCopy, "C", false, "Copy the pull request URL to the clipboard")
	fs.BoolVarP(&f.open, FlagOpen, "O", false, "Open the pull request URL in a browser")
	fs.BoolVarP(&f.version, FlagVersion, "V", false, "Show version information")
	fs.BoolVarP(&f.help, FlagHelp, "h", false, "Show this help message")
	fs.BoolVar(&f.verbose, FlagVerbose, false, "Print every git and gh command that is run")
	return cmd
}

// handleSubmit builds the run options and submits the pull request.
func handleSubmit(cmd *cobra.Command, f cliFlags, forward []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	opts := Options{
		Push:    f.push || cfg.Push,
		Copy:    f.copy || cfg.Copy,
		Open:    f.open || cfg.Open,
		Verbose: f.verbose || cfg.Verbose,
		Editor:  config.ResolveString(getenv(EnvEditor), cfg.Editor, ""),
		Forward: forward,
	}

	git := vcs.NewGit(config.ResolveString("", cfg.GitPath, vcs.DefaultGitPath()), "", opts.Verbose)
	gh := vcs.NewGh(cfg.GhPath, "", opts.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = newSubmitter(opts, git, gh).Run(ctx)
	return err
}

// Run is the entry point for the application logic. It returns the exit code.
func Run(info BuildInfo, args []string) int {
	prog := AppName
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	cmd := newRootCmd(info, prog)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(sys.Stderr, "%s: %v\n", prog, err)
		if keepsBuffer(err) {
			fmt.Fprintf(sys.Stderr, "%s: your message was kept, run %s again to continue editing it\n", prog, prog)
		}
		return 1
	}
	return 0
}

// Main runs the command with os.Args and exits.
func Main(info BuildInfo) {
	osExit(Run(info, os.Args))
}
