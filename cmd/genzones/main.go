// Package main provides the genzones command, which compiles the Unicode
// CLDR windowsZones dataset into the static table embedded by package
// winzones. It is intended to be run via go generate; any pipeline failure
// is fatal so a stale or partial dataset never reaches a build.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"github.com/systz/systz/internal/cldr"
	"github.com/systz/systz/internal/logger"
)

var (
	app     = kingpin.New("genzones", "Compile the CLDR windowsZones dataset into Go source")
	url     = app.Flag("url", "Upstream windowsZones.xml location").Default(cldr.DefaultURL).Envar("CLDR_URL").String()
	out     = app.Flag("out", "Output file").Default("zones_gen.go").String()
	verbose = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Envar("VERBOSE").Bool()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := logger.Init(*verbose, ""); err != nil {
		panic(err)
	}

	ctx := context.Background()

	data, err := cldr.Fetch(ctx, *url)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to fetch windowsZones dataset")
	}
	zlog.Info().Int("bytes", len(data)).Str("url", *url).Msg("Fetched windowsZones dataset")

	doc, err := cldr.Parse(data)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to parse windowsZones dataset")
	}
	if err := doc.Validate(); err != nil {
		zlog.Fatal().Err(err).Msg("Dataset contains an invalid IANA identifier")
	}
	doc.Augment()
	zlog.Info().
		Int("zones", len(doc.Zones)).
		Str("other_version", doc.OtherVersion).
		Str("type_version", doc.TypeVersion).
		Msg("Validated windowsZones dataset")

	f, err := os.Create(*out)
	if err != nil {
		zlog.Fatal().Err(err).Str("out", *out).Msg("Failed to create output file")
	}
	defer f.Close()

	if err := doc.Emit(f, *url, time.Now()); err != nil {
		zlog.Fatal().Err(err).Msg("Failed to emit dataset source")
	}
	zlog.Info().
		Str("out", *out).
		Str("hash", fmt.Sprintf("0x%x", doc.Hash())).
		Msg("Wrote embedded dataset")
}
