package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var (
		query string
		plain bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Browse todos in the interactive list",
		Long: `Open the interactive list.

Keys: / search, a add, space toggle, d delete, tab next field, q quit.
When stdout is not a terminal (or with --plain) the list is printed once.

Examples:
  todo ls
  todo ls --query milk
  todo ls --plain`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			if plain || !ui.IsTerminal(cmd.OutOrStdout()) {
				todos, err := c.ListTodos(cmd.Context(), query)
				if err != nil {
					return err
				}
				printTodos(cmd.OutOrStdout(), todos, query)
				return nil
			}
			return tui.Run(cmd.Context(), c, a.log, tui.Options{
				SearchDelay:  a.cfg.SearchDelay,
				InitialQuery: query,
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "initial search term")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the list instead of opening the TUI")
	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <term...>",
		Short: "Print todos matching a search term",
		Example: `  todo find milk
  todo find "walk the dog"`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			todos, err := c.ListTodos(cmd.Context(), query)
			if err != nil {
				return err
			}
			printTodos(cmd.OutOrStdout(), todos, query)
			return nil
		},
	}
}
