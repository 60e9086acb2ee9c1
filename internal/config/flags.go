package config

import (
	"flag"
	"os"
	"strings"
)

// filterArgs keeps only the flags named in allowed (with their values,
// whether given as "-f v" or "-f=v"), so each parsing stage can run its
// own FlagSet without tripping over flags it does not know.
func filterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := known[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := known[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// configFilePath extracts the config file path from the -c or -config
// flags, ignoring everything else on the command line.
func configFilePath() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return path
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-k string   session signing key
//	-no-seed    skip seeding an empty catalog with sample listings
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-d", "-k", "-no-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.SessionKey, "k", cfg.SessionKey, "session signing key")
	noSeed := fs.Bool("no-seed", !cfg.Seed, "skip seeding sample listings")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Seed = !*noSeed
}
