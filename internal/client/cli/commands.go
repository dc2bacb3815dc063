package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Flags are the persistent flags shared by all commands
type Flags struct {
	ConfigPath string
	DBPath     string
	Backend    string
	ServerURL  string
	LogLevel   string
}

// Builder wires the services once flags are parsed. The returned func
// releases them and is called after the command finishes.
type Builder func(ctx context.Context, flags Flags) (*Cli, func(), error)

// Root is the command tree with lazily built services
type Root struct {
	cmd     *cobra.Command
	build   Builder
	app     *Cli
	cleanup func()
	flags   Flags
}

// NewRoot creates the command tree
func NewRoot(build Builder) *Root {
	r := &Root{build: build}

	r.cmd = &cobra.Command{
		Use:           "oneclickcopy",
		Short:         "Notes made of one-click-copy snippets",
		Long:          `Keep notes of text snippets, copy each line in one step and back them up to Google Drive or a self-hosted server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.setup(cmd.Context())
		},
	}

	pf := r.cmd.PersistentFlags()
	pf.StringVar(&r.flags.ConfigPath, "config", "", "Path to config file (default: ~/.oneclickcopy/config.toml)")
	pf.StringVar(&r.flags.DBPath, "db", "", "Path to local database")
	pf.StringVar(&r.flags.Backend, "backend", "", "Backup backend: gdrive or server")
	pf.StringVar(&r.flags.ServerURL, "server", "", "Backup server URL")
	pf.StringVar(&r.flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	r.cmd.AddCommand(r.commands(true)...)
	return r
}

// Command returns the cobra root command
func (r *Root) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the command line and releases the services afterwards
func (r *Root) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	err := r.cmd.ExecuteContext(ctx)
	r.close()
	return err
}

func (r *Root) setup(ctx context.Context) error {
	if r.app != nil {
		return nil
	}
	app, cleanup, err := r.build(ctx, r.flags)
	if err != nil {
		return err
	}
	r.app = app
	r.cleanup = cleanup
	return nil
}

func (r *Root) close() {
	if r.cleanup != nil {
		r.cleanup()
		r.cleanup = nil
	}
}

// commands builds the subcommands. The shell reuses them without itself.
func (r *Root) commands(withShell bool) []*cobra.Command {
	cmds := []*cobra.Command{
		r.loginCmd(),
		r.logoutCmd(),
		r.statusCmd(),
		r.newCmd(),
		r.listCmd(),
		r.showCmd(),
		r.editCmd(),
		r.copyCmd(),
		r.deleteCmd(),
		r.backupCmd(),
		r.restoreCmd(),
	}
	if withShell {
		cmds = append(cmds, r.shellCmd())
	}
	return cmds
}

func (r *Root) loginCmd() *cobra.Command {
	var (
		register  bool
		passwords Passwords
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the backup backend",
		Long:  `Signs in with Google (device code) or to the self-hosted server, then restores the remote backup once on this device.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.runLogin(cmd.Context(), register, passwords)
		},
	}
	cmd.Flags().BoolVar(&register, "register", false, "Create a server account before signing in")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "Read the server password from file")
	return cmd
}

func (r *Root) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.runLogout(cmd.Context())
		},
	}
}

func (r *Root) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sign-in and backup status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.runStatus(cmd.Context())
		},
	}
}

func (r *Root) newCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.runNew(cmd.Context(), title)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title")
	return cmd
}

func (r *Root) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.runList(cmd.Context())
		},
	}
}

func (r *Root) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a note with numbered snippets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.app.runShow(cmd.Context(), id)
		},
	}
}

func (r *Root) editCmd() *cobra.Command {
	var opts EditOptions
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change a note",
		Long: `Changes the title, replaces or appends snippets, toggles copied marks
or moves a snippet to another position. Without flags the content is
read from input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			opts.TitleSet = cmd.Flags().Changed("title")
			return r.app.runEdit(cmd.Context(), id, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringArrayVarP(&opts.Append, "append", "a", nil, "Append a snippet line (repeatable)")
	cmd.Flags().IntSliceVar(&opts.Toggle, "toggle", nil, "Toggle the copied mark of line N")
	cmd.Flags().IntVar(&opts.MoveFrom, "move", 0, "Move snippet N (use with --to)")
	cmd.Flags().IntVar(&opts.MoveTo, "to", 0, "Target position for --move")
	return cmd
}

func (r *Root) copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [id] [line]",
		Short: "Copy a snippet to the clipboard and mark it copied",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line number %q", args[1])
			}
			return r.app.runCopy(cmd.Context(), id, line)
		},
	}
}

func (r *Root) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.app.runDelete(cmd.Context(), id, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (r *Root) backupCmd() *cobra.Command {
	var now bool
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up all notes",
		Long:  `Requests a backup that honors the cooldown between backups. With --now the backup runs immediately.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.runBackup(cmd.Context(), now)
		},
	}
	cmd.Flags().BoolVar(&now, "now", false, "Ignore the cooldown")
	return cmd
}

func (r *Root) restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Add the notes from the remote backup",
		Long:  `Downloads the remote backup and inserts its notes as new local notes. Existing notes are kept.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.runRestore(cmd.Context())
		},
	}
}

func (r *Root) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runShell(cmd.Context())
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}

var errAlreadySignedIn = errors.New("already signed in, run 'oneclickcopy logout' first")
