package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a todo (title can be multiple words)",
		Example: `  todo add "Buy milk"
  todo add Walk the dog`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				return &UsageError{Usage: cmd.UseLine(), Msg: "add: empty title"}
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			td, err := c.CreateTodo(cmd.Context(), title)
			if err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%s %s", td.ID, td.TaskName))
			return nil
		},
	}
}

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle completion of a todo",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			id := model.ParseID(args[0])
			todos, err := c.ListTodos(cmd.Context(), "")
			if err != nil {
				return err
			}
			var found *model.Todo
			for i := range todos {
				if todos[i].ID.Equal(id) {
					found = &todos[i]
					break
				}
			}
			if found == nil {
				return &NotFoundError{ID: id.String()}
			}

			updated, err := c.UpdateTodo(cmd.Context(), found.Toggled())
			if err != nil {
				return err
			}
			state := "reopened"
			if updated.IsCompleted {
				state = "completed"
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s #%s %s", state, updated.ID, updated.TaskName))
			return nil
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			id := model.ParseID(args[0])
			if err := c.DeleteTodo(cmd.Context(), id); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "removed #"+id.String())
			return nil
		},
	}
}
