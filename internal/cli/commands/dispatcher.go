package commands

import (
	"fmt"
	"strings"
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(env *Env, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	name := strings.ToLower(args[0])
	if name == "help" || name == "--help" || name == "-h" {
		if len(args) > 1 {
			if c, ok := Get(args[1]); ok {
				fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
				return 0
			}
			fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
			fmt.Fprint(Out, FormatGlobalUsage())
			return 2
		}
		fmt.Fprint(Out, FormatGlobalUsage())
		return 0
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	err := c.Run(env, args[1:])
	switch err {
	case nil:
		return 0
	case ErrUsage:
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
}
