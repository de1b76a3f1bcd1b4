package cli

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"

	"github.com/geoconv/geoconv/api"
	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/coord"
)

func InteractiveHandle(ctx context.Context, a *app.App, args []string) {
	var http string
	set := pflag.NewFlagSet("interactive", pflag.ExitOnError)
	set.StringVar(&http, "http", "", "HTTP listen address")
	set.Lookup("http").NoOptDefVal = a.Config().HTTPAddr
	set.Parse(args)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := a.WatchConfig(ctx); err != nil {
			log.Println(err)
		}
	}()

	if http == "" {
		Interactive(ctx, a)
		return
	}

	go func() {
		if err := api.ListenAndServe(ctx, a, http); err != nil {
			log.Println(err)
		}
	}()
	time.Sleep(time.Second)
	Interactive(ctx, a)
}

func Interactive(ctx context.Context, a *app.App) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCompleter(completer)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			str, err := line.Prompt(getPrompt(a))
			if err != nil { // EOF or ctrl+c
				return
			}
			if str == "" {
				continue
			}
			line.AppendHistory(str)

			if str[0] == '#' {
				continue
			}

			if quit := execCmd(a, str); quit {
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
	case <-done:
	}
}

var interactiveCmds = []string{"mode", "type", "set", "back", "clear", "convert", "status", "help", "quit"}

func completer(line string) (c []string) {
	for _, cmd := range interactiveCmds {
		if strings.HasPrefix(cmd, strings.ToLower(line)) {
			c = append(c, cmd)
		}
	}
	return
}

func execCmd(a *app.App, line string) (quit bool) {
	cmd, param := parseCommand(line)
	switch cmd {
	case "mode", "m":
		if param == "" {
			fmt.Println(a.State().Mode)
			return
		}
		m, err := coord.ParseMode(param)
		if err != nil {
			fmt.Println(err)
			return
		}
		a.SetMode(m)
		fmt.Printf("Mode is %s, e.g. %s\n", m, coord.Example(m))
	case "type", "t":
		printText(a.Type(param))
	case "set", "s":
		printText(a.Input(param))
	case "back", "b":
		n := 1
		if param != "" {
			var err error
			if n, err = strconv.Atoi(param); err != nil || n < 1 {
				fmt.Println("Syntax: back [count]")
				return
			}
		}
		printText(a.Backspace(n))
	case "clear":
		a.Clear()
	case "convert", "c":
		s, err := a.Convert()
		if err != nil {
			fmt.Println(a.Message(err))
			return
		}
		printResult(a, *s.Result)
	case "status":
		printStatus(a)
	case "q", "quit":
		return true
	case "":
		return
	default:
		printInteractiveUsage()
	}
	return
}

func printInteractiveUsage() {
	fmt.Println("Modes:", strings.Join([]string{coord.ModeUTM.String(), coord.ModeGMS.String()}, ", "))
	cmds := []string{
		"mode    [utm|gms]  Print or switch notation (clears the entry).",
		"type    <keys>     Type keys at the end of the entry.",
		"set     <text>     Replace the entry (masked as if typed).",
		"back    [count]    Delete characters from the end of the entry.",
		"clear              Clear the entry.",
		"convert            Convert the entry to decimal degrees.",
		"status             Print the entry, result and map position.",
		"quit               Exit.",
	}
	fmt.Println("Commands: ")
	for _, cmd := range cmds {
		fmt.Printf(" %s\n", cmd)
	}
}

func printText(s coord.State) {
	if s.Text == "" {
		fmt.Printf("(empty, e.g. %s)\n", coord.Example(s.Mode))
		return
	}
	fmt.Println(s.Text)
}

func printResult(a *app.App, c coord.DecimalCoordinate) {
	fmt.Println(c)
	for _, s := range a.Styles() {
		fmt.Printf("  %-8s %s\n", s.String()+":", coord.Format(c, s))
	}
}

func printStatus(a *app.App) {
	s := a.GetStatus()
	fmt.Printf("Mode:       %s\n", s.Mode)
	fmt.Printf("Entry:      %s\n", s.Text)
	switch {
	case s.Result != nil:
		fmt.Printf("Result:     %.6f %.6f\n", s.Result.Lat, s.Result.Lng)
	case s.Diagnostic != "":
		fmt.Printf("Error:      %s\n", s.Diagnostic)
	}
	fmt.Printf("Map center: %.6f %.6f\n", s.MapCenter.Lat, s.MapCenter.Lng)
	if len(s.HTTPClients) > 0 {
		fmt.Printf("Web clients: %s\n", strings.Join(s.HTTPClients, ", "))
	}
}

func getPrompt(a *app.App) string {
	var buf bytes.Buffer

	s := a.State()
	fmt.Fprintf(&buf, "[%s]", s.Mode)
	if s.Text != "" {
		fmt.Fprintf(&buf, " %s", s.Text)
	}

	fmt.Fprint(&buf, "> ")
	return buf.String()
}

func parseCommand(str string) (mode, param string) {
	parts := strings.SplitN(strings.TrimSpace(str), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
