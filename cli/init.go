package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/cfg"
	"github.com/geoconv/geoconv/coord"
)

func InitHandle(ctx context.Context, a *app.App, args []string) {
	cancel := exitOnContextCancellation(ctx)
	defer cancel()

	config, err := app.LoadConfig(a.Options().ConfigPath, cfg.DefaultConfig)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("geoconv Initial Configuration")
	fmt.Println("=============================")
	fmt.Print("(Press ctrl+c at any time to abort)\n\n")

	config = initPrompts(config)

	if err := app.WriteConfig(config, a.Options().ConfigPath); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nThat's it! Basic configuration is set. For advanced settings, run '%s configure'.\n", os.Args[0])
}

func initPrompts(config cfg.Config) cfg.Config {
	for {
		str := prompt("Default input notation", config.DefaultMode.String(), coord.ModeUTM.String(), coord.ModeGMS.String())
		m, err := coord.ParseMode(str)
		if err == nil {
			config.DefaultMode = m
			break
		}
		fmt.Println("⚠", err)
	}

	locale := prompt("Language of error messages", config.Locale, "en", "pt-BR")
	config.Locale = coord.ParseLocale(locale).String()

	for {
		str := prompt("Output styles (comma separated)", strings.Join(config.OutputStyles, ","))
		c := config
		c.OutputStyles = strings.FieldsFunc(str, SplitFunc)
		if _, unknown := c.Styles(); len(unknown) > 0 {
			fmt.Printf("⚠ Unknown style(s) %s. Choose from: %s\n", strings.Join(unknown, ", "), styleNames())
			continue
		}
		config = c
		break
	}

	config.HTTPAddr = prompt("Web UI listen address", config.HTTPAddr)
	return config
}

func styleNames() string {
	names := make([]string, len(coord.Styles))
	for i, s := range coord.Styles {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
