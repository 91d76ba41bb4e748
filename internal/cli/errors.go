package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError marks bad arguments; the process exits with code 2.
type UsageError struct {
	Usage string
	Msg   string
}

func (e *UsageError) Error() string {
	if e.Msg == "" {
		return "usage: " + e.Usage
	}
	return e.Msg + "\nusage: " + e.Usage
}

// NotFoundError indicates no listed todo has the given id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo %s not found", e.ID)
}

// exactArgs is cobra.ExactArgs returning a UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{
				Usage: cmd.UseLine(),
				Msg:   fmt.Sprintf("%s: expected %d argument(s), got %d", cmd.Name(), n, len(args)),
			}
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs returning a UsageError.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return &UsageError{
				Usage: cmd.UseLine(),
				Msg:   fmt.Sprintf("%s: expected at least %d argument(s)", cmd.Name(), n),
			}
		}
		return nil
	}
}

// maxArgs is cobra.MaximumNArgs returning a UsageError.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return &UsageError{
				Usage: cmd.UseLine(),
				Msg:   fmt.Sprintf("%s: expected at most %d argument(s), got %d", cmd.Name(), n, len(args)),
			}
		}
		return nil
	}
}
