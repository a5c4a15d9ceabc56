package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags registers the configuration flags on fs and parses args.
// Binaries register their own flags on the same set before the config is
// loaded; positional arguments stay available through fs.Args().
//
// Flags:
//
//	-c/-config json file path with configs
//	-endpoint ingestion endpoint URL
//	-ceiling chunk payload ceiling (e.g. "30MB")
//	-max-files maximum number of files per batch
//	-request-timeout request timeout (e.g. "30s", "2m")
//	-d journal database DSN
//	-a dev server address in format [host]:[port]
//	-files-dir dev server file directory
//	-max-file-size dev server per-file limit (e.g. "25MB")
//	-public-url dev server base URL for file links
//	-log-level zerolog level
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		jsonConfigPath string
		endpoint       string
		ceiling        ByteSize
		maxFiles       int
		requestTimeout time.Duration
		databaseDSN    string
		filesDir       string
		maxFileSize    ByteSize
		publicURL      string
		logLevel       string
	)

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&endpoint, "endpoint", "", "Ingestion endpoint URL")
	fs.Var(&ceiling, "ceiling", "Chunk payload ceiling (e.g. 30MB)")
	fs.IntVar(&maxFiles, "max-files", 0, "Maximum number of files per batch")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 2m)")
	fs.StringVar(&databaseDSN, "d", "", "Journal database DSN")
	fs.Var(&serverAddress, "a", "Dev server address host:port")
	fs.StringVar(&filesDir, "files-dir", "", "Dev server file directory")
	fs.Var(&maxFileSize, "max-file-size", "Dev server per-file limit (e.g. 25MB)")
	fs.StringVar(&publicURL, "public-url", "", "Dev server base URL for file links")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel},
		Upload: Upload{
			Ceiling:  ceiling,
			MaxFiles: maxFiles,
		},
		Adapter: Adapter{
			EndpointURL:    endpoint,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{Dir: filesDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxFileSize:    maxFileSize,
			PublicURL:      publicURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
