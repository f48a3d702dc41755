package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/spf13/cobra"
)

// errInvalidShellLine is returned when a line cannot be split into words.
var errInvalidShellLine = errors.New("invalid shell line")

// newShellCommand creates the shell command.
func newShellCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Read todo commands from stdin",
		Long: `Start a line-oriented shell over a single registry.

Each line is one command: add, toggle, rm, show, list, stats or help.
Everything after "add" is the todo text, taken as typed.
Errors are printed and the shell keeps reading. "exit", "quit" or end of
input leave the shell.

Example:
  printf 'add Learn Go\ntoggle 1\nlist\n' | todo shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt := domain.DefaultShellPrompt
			if c.AppConfig != nil {
				prompt = c.AppConfig.Shell.Prompt
			}
			return runShell(cmd.Context(), c, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), prompt)
		},
	}
	return cmd
}

// newShellRootCommand creates the command tree used for a single shell line.
func newShellRootCommand(c *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTaskCommands(c)...)
	root.InitDefaultHelpCmd()
	return root
}

// runShell reads commands line by line until exit, quit or EOF.
func runShell(ctx context.Context, c *app.Container, in io.Reader, out, errOut io.Writer, prompt string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			break
		}

		args, err := parseShellLine(scanner.Text())
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		if err := execShellLine(ctx, c, args, out, errOut); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			if c.Logger != nil {
				c.Logger.Debug(0, "shell", fmt.Sprintf("%s: %v", args[0], err))
			}
		}
	}

	return scanner.Err()
}

// execShellLine runs one parsed line against a fresh command tree.
func execShellLine(ctx context.Context, c *app.Container, args []string, out, errOut io.Writer) error {
	root := newShellRootCommand(c)
	if sub, _, err := root.Find(args); err != nil || sub == root {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCommand, args[0])
	}

	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// parseShellLine splits a shell line into command arguments.
// The text after "add" is kept whole so apostrophes and leading dashes reach
// the registry unchanged. Other commands are split with shell quoting rules.
func parseShellLine(line string) ([]string, error) {
	verb, rest := cutShellVerb(line)
	if verb == "add" {
		return shellAddArgs(rest), nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidShellLine, err)
	}
	return args, nil
}

// cutShellVerb returns the first word of line and the trimmed remainder.
func cutShellVerb(line string) (verb, rest string) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

// shellAddArgs builds the add arguments for the text typed after the verb.
func shellAddArgs(rest string) []string {
	switch rest {
	case "":
		return []string{"add"}
	case "-h", "--help":
		return []string{"add", rest}
	}
	return []string{"add", "--", shellAddText(rest)}
}

// shellAddText unquotes a text that starts with a quote and parses cleanly.
// Anything else is taken literally, with runs of whitespace collapsed.
func shellAddText(rest string) string {
	if rest[0] == '"' || rest[0] == '\'' {
		if words, err := shellwords.Parse(rest); err == nil {
			return strings.Join(words, " ")
		}
	}
	return strings.Join(strings.Fields(rest), " ")
}
