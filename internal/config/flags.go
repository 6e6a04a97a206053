package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-w workspace root path
//	-settings workspace settings file path
//	-a script server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-force-upload comma-separated script names exempt from conflict checks
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

// parseFlags is the testable core of ParseFlags: it registers all flags
// on fs and parses args.
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var workspaceRoot string
	var settingsPath string
	var requestTimeout time.Duration
	var forceUpload string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Script server address host:port")
	fs.StringVar(&workspaceRoot, "w", "", "Workspace root path")
	fs.StringVar(&settingsPath, "settings", "", "Workspace settings file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&forceUpload, "force-upload", "", "Comma-separated script names exempt from conflict checks")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		Workspace: Workspace{
			Root:         workspaceRoot,
			SettingsPath: settingsPath,
		},
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Upload: Upload{
			ForceUpload: splitNames(forceUpload),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitNames splits a comma-separated list, trimming whitespace and
// dropping empty items.
func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless
// host is "localhost", and returns an error if the format or values are
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
