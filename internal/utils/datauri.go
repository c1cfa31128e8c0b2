package utils

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// FileToDataURI reads a local image file and returns it as a base64 data
// URI, so the image can be embedded into a self-contained landing page or
// drawn over the QR code without keeping the file around.
//
// The MIME type is sniffed from the file content, not the extension.
func FileToDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading image file: %w", err)
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURI decodes a "data:<mime>;base64,<payload>" URI and returns the
// raw bytes and the MIME type.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}

	mime, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return nil, "", fmt.Errorf("unsupported data URI encoding %q", encoding)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("error decoding data URI payload: %w", err)
	}

	return data, mime, nil
}

// IsRemoteURL reports whether s points at a remote HTTP(S) resource rather
// than a local file path or data URI.
func IsRemoteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
