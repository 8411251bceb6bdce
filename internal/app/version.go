package app

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"gitpr/internal/config"
	"gitpr/internal/sys"
	"gitpr/internal/vcs"
)

// ToolRow is one line of the version report.
type ToolRow struct {
	Tool    string
	Path    string
	Version string
}

func handleVersion(cmd *cobra.Command, info BuildInfo) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", AppName, info)
	fmt.Fprintln(out)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to load configuration: %v\n", err)
		cfg = &config.Config{}
	}

	git := vcs.NewGit(config.ResolveString("", cfg.GitPath, vcs.DefaultGitPath()), "", false)
	gh := vcs.NewGh(cfg.GhPath, "", false)
	return RenderToolTable(out, collectTools(git, gh, config.ResolveString(getenv(EnvEditor), cfg.Editor, "")))
}

func collectTools(git *vcs.Git, gh *vcs.Gh, editorOverride string) []ToolRow {
	rows := []ToolRow{
		{Tool: "git", Path: displayPath(git.Path), Version: "not found"},
		{Tool: "gh", Path: displayPath(gh.Path), Version: "not found"},
	}
	if v, err := git.Version(); err == nil {
		rows[0].Version = v
	}
	if v, err := gh.Version(); err == nil {
		rows[1].Version = v
	}

	editor := ResolveEditor(editorOverride, git, getenv)
	rows = append(rows, ToolRow{Tool: "editor", Path: EditorInvocation(editor), Version: "-"})
	return rows
}

func displayPath(path string) string {
	if resolved, err := sys.LookPath(path); err == nil {
		return resolved
	}
	return path
}

// RenderToolTable writes rows as a table.
func RenderToolTable(w io.Writer, rows []ToolRow) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.On, BetweenRows: tw.Off},
			},
		}),
	)
	table.Header("Tool", "Path", "Version")
	for _, row := range rows {
		if err := table.Append(row.Tool, row.Path, row.Version); err != nil {
			return err
		}
	}
	return table.Render()
}
