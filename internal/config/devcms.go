package config

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultCMSPort   = 1337
	defaultCMSSecret = "VerySecurKey2000Cat"
)

// DevCMSConfig configures the local CMS stand-in.
type DevCMSConfig struct {
	Addr   string
	Debug  bool
	Seed   string
	Secret string
}

func ReadDevCMSConfig() (*DevCMSConfig, error) {
	_ = godotenv.Load()
	return parseDevCMS(os.Args[0], os.Args[1:])
}

func parseDevCMS(name string, args []string) (*DevCMSConfig, error) {
	var host, seed, secret string
	var port int
	var debug bool

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&host, "addr", defaultAddr, "flag to set the server startup host")
	fs.IntVar(&port, "port", defaultCMSPort, "flag to set the server startup port")
	fs.BoolVar(&debug, "debug", false, "flag to set Debug logger level")
	fs.StringVar(&seed, "seed", "", "yaml file with users and catalogue, built-in when empty")
	fs.StringVar(&secret, "secret", defaultCMSSecret, "jwt signing key")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	host = cmp.Or(os.Getenv("CMS_HOST"), host)
	p := cmp.Or(os.Getenv("CMS_PORT"), strconv.Itoa(port))
	port, err := strconv.Atoi(p)
	if err != nil {
		return nil, fmt.Errorf("invalid CMS_PORT: %w", err)
	}

	return &DevCMSConfig{
		Addr:   fmt.Sprintf("%s:%d", host, port),
		Debug:  debug || os.Getenv("DEBUG") == "true",
		Seed:   cmp.Or(os.Getenv("CMS_SEED"), seed),
		Secret: cmp.Or(os.Getenv("CMS_JWT_SECRET"), secret),
	}, nil
}
