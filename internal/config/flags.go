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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a preview server address in format [host]:[port]
//	-preview enable the preview server
//	-o export directory
//	-scale PNG export pixel multiplier
//	-size base QR render size in pixels
//	-c/-config json file path with configs
//	-api-key Gemini API key
//	-model Gemini model name
//	-request-timeout assistant request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var previewAddress NetAddress
	var previewEnabled bool
	var exportDir string
	var exportScale int
	var renderSize int
	var jsonConfigPath string
	var apiKey string
	var model string
	var requestTimeout time.Duration

	flag.Var(&previewAddress, "a", "Preview server address host:port")
	flag.BoolVar(&previewEnabled, "preview", false, "Enable the preview server")
	flag.StringVar(&exportDir, "o", "", "Export directory")
	flag.IntVar(&exportScale, "scale", 0, "PNG export pixel multiplier")
	flag.IntVar(&renderSize, "size", 0, "Base QR render size in pixels")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&apiKey, "api-key", "", "Gemini API key")
	flag.StringVar(&model, "model", "", "Gemini model name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Assistant request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Assistant: Assistant{
			APIKey:         apiKey,
			Model:          model,
			RequestTimeout: requestTimeout,
		},
		Preview: Preview{
			HTTPAddress: previewAddress.String(),
			Enabled:     previewEnabled,
		},
		Export: Export{
			Dir:   exportDir,
			Scale: exportScale,
		},
		Render: Render{
			Size: renderSize,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
