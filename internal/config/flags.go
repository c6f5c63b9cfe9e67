package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the journal command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d storage DSN (memory, file:<path>, sqlite:<path>, postgres://...)
//	-c/-config json file path with configs
//	-iterations PBKDF2 iterations for new vaults
//	-slot storage slot name of the vault record
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-token-duration session token lifetime (e.g. "12h")
//	-auto-lock idle time before the journal locks itself (e.g. "15m")
//	-request-timeout request timeout (e.g. "30s")
//	-remote journal server address used by the terminal client
//	-lock-check-interval auto-lock worker period (e.g. "1m")
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("heart-journal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var (
		storageDSN        string
		jsonConfigPath    string
		iterations        int
		slotName          string
		tokenSignKey      string
		tokenIssuer       string
		tokenDuration     time.Duration
		autoLockAfter     time.Duration
		requestTimeout    time.Duration
		remoteAddress     string
		lockCheckInterval time.Duration
		logLevel          string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&storageDSN, "d", "", "Storage DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&iterations, "iterations", 0, "PBKDF2 iterations for new vaults")
	fs.StringVar(&slotName, "slot", "", "Storage slot name")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 12h)")
	fs.DurationVar(&autoLockAfter, "auto-lock", 0, "Idle time before auto-lock (e.g., 15m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&remoteAddress, "remote", "", "Journal server address for the client")
	fs.DurationVar(&lockCheckInterval, "lock-check-interval", 0, "Auto-lock check period (e.g., 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			KDFIterations: iterations,
			SlotName:      slotName,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			AutoLockAfter: autoLockAfter,
			LogLevel:      logLevel,
		},
		Storage: Storage{DSN: storageDSN},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{LockCheckInterval: lockCheckInterval},
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
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
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
