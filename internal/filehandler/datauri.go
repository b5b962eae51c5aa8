// Package filehandler reads user-selected media files into the forms the
// generation gateway accepts: raw bytes, MIME types, and data URIs. Files are
// never sent anywhere except as request payloads.
package filehandler

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// FilePayload is a local file prepared for attachment to a generation request.
type FilePayload struct {
	// Data is the raw file content.
	Data []byte
	// MIMEType is sniffed from the content, e.g. "image/jpeg".
	MIMEType string
}

// LoadFile reads a local file and sniffs its MIME type from the content.
func LoadFile(path string) (*FilePayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	mimeType := http.DetectContentType(data)

	log.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Str("mime", mimeType).
		Msg("Loaded local file for request payload")

	return &FilePayload{Data: data, MIMEType: mimeType}, nil
}

// DataURI encodes the payload as a data URI for display or transport.
func (p *FilePayload) DataURI() string {
	return "data:" + p.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ParseDataURI splits a data URI into its MIME type and decoded bytes.
// The base64 payload decodes to exactly the bytes that were encoded; no
// corruption is introduced across the boundary.
func ParseDataURI(uri string) (*FilePayload, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, fmt.Errorf("not a data URI")
	}

	meta, payload, found := strings.Cut(uri[len("data:"):], ",")
	if !found {
		return nil, fmt.Errorf("data URI has no payload separator")
	}

	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("data URI is not base64-encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URI payload: %w", err)
	}

	return &FilePayload{Data: data, MIMEType: mimeType}, nil
}
