package cli

import (
	"fmt"
	"io"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// printTodos writes a framed, non-interactive listing.
func printTodos(w io.Writer, todos []model.Todo, query string) {
	t := ui.Current()
	done := 0
	for _, td := range todos {
		if td.IsCompleted {
			done++
		}
	}

	title := t.Title.Render("Todos")
	if query != "" {
		title += t.Muted.Render(fmt.Sprintf("  matching %q", query))
	}
	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d  %s %d",
			title,
			t.Success.Render(t.SymOK), done,
			t.Pending.Render("•"), len(todos)-done,
			t.Accent.Render("Total"), len(todos)),
		"",
	}

	if len(todos) == 0 {
		if query == "" {
			lines = append(lines, t.Title.Render("No Records"))
		} else {
			lines = append(lines, t.Muted.Render("No matches"))
		}
	}
	for _, td := range todos {
		box, text := t.Muted.Render(t.BoxUnchecked), td.TaskName
		if td.IsCompleted {
			box, text = t.Success.Render(t.BoxChecked), t.Done.Render(td.TaskName)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s", box, text, t.Muted.Render("#"+td.ID.String())))
	}
	if len(todos) > 0 {
		lines = append(lines, "", ui.ProgressBar(done, len(todos), 28))
	}
	fmt.Fprintln(w, ui.Panel(lines))
}
