package cli

import (
	"github.com/geoconv/geoconv/app"
)

var Commands = []app.Command{
	{
		Str:        "init",
		Desc:       "Initial configuration setup.",
		HandleFunc: InitHandle,
		Usage:      "Interactive basic setup of notation, language and output styles.",
	},
	{
		Str:        "configure",
		Desc:       "Open configuration file for editing.",
		HandleFunc: ConfigureHandle,
	},
	{
		Str:   "interactive",
		Desc:  "Run interactive mode.",
		Usage: "[options]",
		Options: map[string]string{
			"--http": "Start http server for web UI in the background (optionally at the given address).",
		},
		HandleFunc: InteractiveHandle,
		LongLived:  true,
	},
	{
		Str:   "http",
		Desc:  "Run http server for web UI.",
		Usage: "[options]",
		Options: map[string]string{
			"--addr, -a": "Listen address. Default is localhost:8080.",
		},
		HandleFunc: HTTPHandle,
		LongLived:  true,
	},
	{
		Str:     "convert",
		Aliases: []string{"conv"},
		Desc:    "Convert UTM or GMS coordinates to decimal degrees.",
		Usage: "[options] [coordinate]\n" +
			"\tIf no coordinate is given, one coordinate per line is read from stdin.",
		Options: map[string]string{
			"--mode, -m":   "Input notation (utm or gms). Default from config.",
			"--style, -s":  "Output style (signed, decimal, degmin, dms, grid). May be repeated.",
			"--locale, -l": "Language of error messages (en or pt-BR).",
			"--mask":       "Apply the input mask before validating.",
		},
		Example:    ExampleConvert,
		HandleFunc: ConvertHandle,
	},
	{
		Str:   "mask",
		Desc:  "Print the masked form of a keystroke sequence.",
		Usage: "[options] text",
		Options: map[string]string{
			"--mode, -m":     "Input notation (utm or gms). Default from config.",
			"--symbolic, -y": "Print GMS with degree, minute and second marks.",
		},
		Example:    ExampleMask,
		HandleFunc: MaskHandle,
	},
	{
		Str:   "utm",
		Desc:  "Project decimal degrees to UTM/MGRS, or resolve an MGRS reference.",
		Usage: "[options] lat,lng | mgrs-reference",
		Options: map[string]string{
			"--zone, -z":      "Force UTM zone (1-60). Default is the natural zone.",
			"--precision, -p": "MGRS precision in digits per axis (1-5). Default is 5.",
		},
		Example:    ExampleUTM,
		HandleFunc: UTMHandle,
	},
	{
		Str:   "version",
		Desc:  "Print the application version.",
		Usage: "[options]",
		Options: map[string]string{
			"--check, -c":   "Check if a new version is available",
			"--verbose, -v": "Show detailed build information",
		},
		HandleFunc: VersionHandle,
	},
	{
		Str:        "env",
		Desc:       "List environment variables.",
		HandleFunc: EnvHandle,
	},
	{
		Str:  "help",
		Desc: "Print detailed help for a given command.",
		// Avoid initialization loop by invoking helpHandler in main
	},
}

func FindCommand(args []string) (cmd app.Command, pre, post []string, err error) {
	cmdMap := make(map[string]app.Command, len(Commands))
	for _, c := range Commands {
		cmdMap[c.Str] = c
		for _, alias := range c.Aliases {
			cmdMap[alias] = c
		}
	}

	for i, arg := range args {
		if cmd, ok := cmdMap[arg]; ok {
			return cmd, args[1:i], args[i+1:], nil
		}
	}
	err = app.ErrNoCmd
	return
}
