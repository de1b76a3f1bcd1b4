package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/coord"
)

const ExampleMask = `
  mask -m utm "50a0000b,4649c776,2d3,S"   # 500000,4649776,23,S
  mask -m gms -y 15300S475520W            # 15° 30' 0" S 47° 55' 20" W`

func MaskHandle(ctx context.Context, a *app.App, args []string) {
	var (
		mode     = a.State().Mode.String()
		symbolic bool
	)
	set := pflag.NewFlagSet("mask", pflag.ExitOnError)
	set.StringVarP(&mode, "mode", "m", mode, "Input notation (utm or gms).")
	set.BoolVarP(&symbolic, "symbolic", "y", false, "Print GMS with degree, minute and second marks.")
	set.Parse(args)

	m, err := coord.ParseMode(mode)
	if err != nil {
		log.Fatal(err)
	}
	if set.NArg() == 0 {
		set.Usage()
		os.Exit(1)
	}

	masked := coord.Mask(m, strings.Join(set.Args(), ""))
	if symbolic {
		masked = coord.Symbolic(m, masked)
	}
	fmt.Println(masked)
}
