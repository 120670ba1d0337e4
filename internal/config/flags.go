package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-log-level minimum log level (debug, info, warn, error)
//	-debug enable debug mode
//	-test-steps number of waits performed by GET /test
//	-test-step-delay duration of each GET /test wait
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg, _, err := parseFlags(args)
	return cfg, err
}

// parseFlags is ParseFlags that also reports which zero values were passed
// explicitly.
func parseFlags(args []string) (*StructuredConfig, explicitZeros, error) {
	fs := flag.NewFlagSet("auctions-api", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var logLevel string
	var debug bool
	var testSteps int
	var testStepDelay time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.BoolVar(&debug, "debug", false, "Enable debug mode")
	fs.IntVar(&testSteps, "test-steps", 0, "Number of waits performed by GET /test")
	fs.DurationVar(&testStepDelay, "test-step-delay", 0, "Duration of each GET /test wait")

	if err := fs.Parse(args); err != nil {
		return nil, explicitZeros{}, fmt.Errorf("error parsing flags: %w", err)
	}

	var zeros explicitZeros
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "test-steps":
			zeros.testSteps = testSteps == 0
		case "test-step-delay":
			zeros.testStepDelay = testStepDelay == 0
		}
	})

	return &StructuredConfig{
		App: App{
			Debug:         debug,
			LogLevel:      logLevel,
			TestSteps:     testSteps,
			TestStepDelay: testStepDelay,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, zeros, nil
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
// It validates the port range, checks IP correctness unless host is
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
