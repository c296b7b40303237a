package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort      = 5000
	DefaultHost      = "0.0.0.0"
	DefaultSecretKey = "dev-secret-key"
	DefaultEnvFile   = ".env"
)

var ErrInvalidPort = errors.New("invalid port")

type Config struct {
	Port      int
	Host      string
	SecretKey string
	Debug     bool
	WebDir    string
}

// Addr returns the listen address, e.g. "0.0.0.0:5000"
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// UsingDefaultSecret reports whether SecretKey is the development fallback
func (c Config) UsingDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables already set are left untouched. An empty path disables loading.
// A missing file is only an error when required is set.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// EnvFileFromArgs returns the value of the -env flag without parsing the
// rest of the arguments, so the file can be loaded before ParseFlags reads
// the environment. explicit reports whether the path came from the flag.
// Scanning stops where flag.Parse would: at "--", at the first non-flag
// argument, or at a flag it does not know.
func EnvFileFromArgs(args []string) (path string, explicit bool) {
	flags, _ := newFlagSet()
	for i := 0; i < len(args); i++ {
		name, ok := strings.CutPrefix(args[i], "-")
		if !ok || name == "" {
			break
		}
		if name == "-" {
			break
		}
		name = strings.TrimPrefix(name, "-")
		if name == "" || name[0] == '-' || name[0] == '=' {
			break
		}
		name, value, hasValue := strings.Cut(name, "=")
		f := flags.Lookup(name)
		if f == nil {
			break
		}
		if name == "env" {
			if hasValue {
				return value, true
			}
			if i+1 < len(args) {
				return args[i+1], true
			}
			// Parse reports the missing argument
			break
		}
		if !hasValue && !isBoolFlag(f) {
			i++ // skip the flag's value
		}
	}
	return DefaultEnvFile, false
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// flagValues holds the raw flag results before environment fallback
type flagValues struct {
	cfg     Config
	envFile string
}

func newFlagSet() (*flag.FlagSet, *flagValues) {
	v := &flagValues{}
	flags := flag.NewFlagSet("juego-fantastico", flag.ContinueOnError)

	flags.IntVar(&v.cfg.Port, "p", 0, "Server port")
	flags.StringVar(&v.cfg.SecretKey, "secret-key", "", "Secret key (prefer env)")
	flags.StringVar(&v.cfg.WebDir, "web", "", "Serve templates and static files from this directory instead of the embedded copy")
	flags.BoolVar(&v.cfg.Debug, "debug", true, "Verbose diagnostics")
	// Already consumed by EnvFileFromArgs; declared so Parse accepts it.
	flags.StringVar(&v.envFile, "env", DefaultEnvFile, "Dotenv file loaded at startup (empty disables)")

	return flags, v
}

// ParseFlags builds the process configuration from flags, then environment
// variables, then defaults.
func ParseFlags(args []string) (Config, error) {
	flags, v := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := v.cfg
	cfg.Host = DefaultHost

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, fmt.Errorf("%w: PORT=%q is not an integer", ErrInvalidPort, portStr)
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: %d out of range 1-65535", ErrInvalidPort, cfg.Port)
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("SECRET_KEY")
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = DefaultSecretKey
	}

	if cfg.WebDir == "" {
		cfg.WebDir = os.Getenv("WEB_DIR")
	}

	if !set["debug"] {
		if debug := os.Getenv("DEBUG"); debug != "" {
			b, err := strconv.ParseBool(debug)
			if err != nil {
				return Config{}, fmt.Errorf("invalid DEBUG value %q: %w", debug, err)
			}
			cfg.Debug = b
		}
	}

	return cfg, nil
}
