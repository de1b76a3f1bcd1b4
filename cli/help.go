package cli

import (
	"github.com/spf13/pflag"
)

func HelpHandle(args []string) {
	if len(args) == 0 {
		pflag.Usage()
		return
	}

	// Print usage for the specified command
	arg := args[0]
	for _, cmd := range Commands {
		if cmd.Str == arg {
			cmd.PrintUsage()
			return
		}
		for _, alias := range cmd.Aliases {
			if alias == arg {
				cmd.PrintUsage()
				return
			}
		}
	}

	// Fallback to main help text
	pflag.Usage()
}
