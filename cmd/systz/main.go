// Package main provides the systz command, which prints the operating
// system's IANA timezone identifier.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata" // timezone database for hosts without zoneinfo

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"github.com/systz/systz"
	"github.com/systz/systz/internal/logger"
)

const issuesURL = "https://github.com/systz/systz/issues"

var (
	app     = kingpin.New("systz", "Print the operating system's IANA timezone identifier")
	verbose = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Envar("VERBOSE").Bool()
	logfile = app.Flag("logfile", "Path to log file (default: stderr)").Envar("LOGFILE").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := logger.Init(*verbose, *logfile); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	tz, ok := systz.Resolve()
	if !ok {
		zlog.Debug().Msg("every timezone source was absent or unparsable")
		fmt.Fprintln(os.Stderr, "Error: failed to determine the system timezone.")
		fmt.Fprintf(os.Stderr, "An unresolvable timezone usually means a missing fallback heuristic; please report it at %s\n", issuesURL)
		os.Exit(1)
	}
	fmt.Println(tz)
}
