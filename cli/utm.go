package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/spf13/pflag"

	"github.com/geoconv/geoconv/app"
	"github.com/geoconv/geoconv/coord"
	"github.com/geoconv/geoconv/internal/projection"
)

const ExampleUTM = `
  utm 42.662139,-71.365553
  utm --zone 22 -- -15.793889 -47.882778
  utm 16SGC3855124838`

func UTMHandle(ctx context.Context, a *app.App, args []string) {
	var zone, precision int
	set := pflag.NewFlagSet("utm", pflag.ExitOnError)
	set.IntVarP(&zone, "zone", "z", 0, "Force UTM zone (1-60).")
	set.IntVarP(&precision, "precision", "p", projection.MaxMGRSPrecision, "MGRS precision (1-5).")
	set.Parse(args)

	arg := strings.Join(set.Args(), " ")
	if strings.TrimSpace(arg) == "" {
		set.Usage()
		os.Exit(1)
	}

	if err := writeUTM(os.Stdout, a.Projector(), arg, zone, precision); err != nil {
		log.Fatal(err)
	}
}

// writeUTM projects "lat,lng" (or "lat lng") to UTM and MGRS. Anything else
// is resolved as an MGRS reference.
func writeUTM(w io.Writer, p projection.WGS84, arg string, zone, precision int) error {
	c, ok := parseLatLng(arg)
	if !ok {
		res, err := p.FromMGRS(strings.ToUpper(strings.ReplaceAll(arg, " ", "")))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, res)
		return nil
	}
	if !c.Valid() {
		return fmt.Errorf("position %v is out of range", c)
	}

	u, err := p.ForwardInZone(c.Lat, c.Lng, zone)
	if err != nil {
		return err
	}
	mgrs, err := p.ToMGRS(c.Lat, c.Lng, precision)
	if err != nil {
		return err
	}

	f := u.Fields()
	t := gotabulate.Create([][]string{{
		strconv.Itoa(f.Zone),
		f.Hemisphere.String(),
		fmt.Sprintf("%.0f", f.Easting),
		fmt.Sprintf("%.0f", f.Northing),
		mgrs,
	}})
	t.SetHeaders([]string{"Zone", "Hemisphere", "Easting", "Northing", "MGRS"})
	t.SetAlign("left")
	fmt.Fprintln(w, t.Render("simple"))
	fmt.Fprintln(w, "Input:", strings.Join([]string{
		strconv.FormatFloat(f.Easting, 'f', 0, 64),
		strconv.FormatFloat(f.Northing, 'f', 0, 64),
		strconv.Itoa(f.Zone),
		f.Hemisphere.String(),
	}, coord.Delimiter))
	return nil
}

func parseLatLng(str string) (coord.DecimalCoordinate, bool) {
	parts := strings.FieldsFunc(str, SplitFunc)
	if len(parts) != 2 {
		return coord.DecimalCoordinate{}, false
	}
	lat, err1 := strconv.ParseFloat(parts[0], 64)
	lng, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return coord.DecimalCoordinate{}, false
	}
	return coord.DecimalCoordinate{Lat: lat, Lng: lng}, true
}
