package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/coord"
)

const ExampleConvert = `
  convert -m utm 500000,4649776,23,S
  convert -m gms -s dms -s grid "15° 30' 0\" S 47° 55' 20\" W"
  convert -m gms --mask 15300S475520W
  cat points.txt | convert -m gms -s signed`

// converter converts a batch of coordinate texts into table rows.
type converter struct {
	parse  func(coord.Mode, string) (coord.DecimalCoordinate, error)
	mode   coord.Mode
	styles []coord.Style
	locale language.Tag
	mask   bool
}

func (c converter) headers() []string {
	h := []string{"Input"}
	for _, s := range c.styles {
		h = append(h, s.String())
	}
	return h
}

// row converts one input. Failures yield the localized diagnostic in
// place of the renderings.
func (c converter) row(input string) (row []string, err error) {
	text := strings.TrimSpace(input)
	if c.mask {
		text = coord.Mask(c.mode, text)
	}
	row = []string{text}

	res, err := c.parse(c.mode, text)
	if err != nil {
		row = append(row, coord.AsDiagnostic(err).Message(c.locale))
		for len(row) < len(c.styles)+1 {
			row = append(row, "")
		}
		return row, err
	}
	for _, s := range c.styles {
		row = append(row, coord.Format(res, s))
	}
	return row, nil
}

func ConvertHandle(ctx context.Context, a *app.App, args []string) {
	var (
		mode   = a.State().Mode.String()
		styles []string
		locale string
		mask   bool
	)
	set := pflag.NewFlagSet("convert", pflag.ExitOnError)
	set.StringVarP(&mode, "mode", "m", mode, "Input notation (utm or gms).")
	set.StringArrayVarP(&styles, "style", "s", nil, "Output style (may be repeated).")
	set.StringVarP(&locale, "locale", "l", "", "Language of error messages.")
	set.BoolVar(&mask, "mask", false, "Apply the input mask before validating.")
	set.Parse(args)

	m, err := coord.ParseMode(mode)
	if err != nil {
		log.Fatal(err)
	}
	c := converter{parse: a.Parse, mode: m, styles: a.Styles(), locale: a.Locale(), mask: mask}
	if len(styles) > 0 {
		c.styles = c.styles[:0]
		for _, str := range styles {
			s, err := coord.ParseStyle(str)
			if err != nil {
				log.Fatal(err)
			}
			c.styles = append(c.styles, s)
		}
	}
	if locale != "" {
		c.locale = coord.ParseLocale(locale)
	}

	var inputs []string
	if text := strings.Join(set.Args(), " "); strings.TrimSpace(text) != "" {
		inputs = []string{text}
	} else {
		if isTerminal(os.Stdin) {
			fmt.Fprintln(os.Stderr, "Reading one coordinate per line (ctrl+d to end)...")
		}
		cancel := exitOnContextCancellation(ctx)
		inputs = readInputs(os.Stdin)
		cancel()
	}
	if len(inputs) == 0 {
		set.Usage()
		os.Exit(1)
	}

	if failed := c.writeTable(os.Stdout, inputs); failed > 0 {
		os.Exit(1)
	}
}

// writeTable converts all inputs and renders them as a table. A single
// successful input is rendered as one rendering per line. It returns the
// number of failed inputs.
func (c converter) writeTable(w io.Writer, inputs []string) (failed int) {
	if len(inputs) == 1 {
		row, err := c.row(inputs[0])
		if err != nil {
			fmt.Fprintln(w, row[1])
			return 1
		}
		for i, s := range c.styles {
			fmt.Fprintf(w, "%-8s %s\n", s.String()+":", row[i+1])
		}
		return 0
	}

	rows := make([][]string, 0, len(inputs))
	for _, input := range inputs {
		row, err := c.row(input)
		if err != nil {
			failed++
		}
		rows = append(rows, row)
	}
	t := gotabulate.Create(rows)
	t.SetHeaders(c.headers())
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)
	fmt.Fprintln(w, t.Render("simple"))
	return failed
}

// readInputs reads one coordinate per line, skipping blank lines and
// #-comments.
func readInputs(r io.Reader) []string {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		log.Println(err)
	}
	return inputs
}
