package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Metadata describes one extracted resume document
type Metadata struct {
	Source     string   `json:"source"`
	Format     string   `json:"format"`    // file extension without the dot
	Timestamp  string   `json:"timestamp"` // RFC3339 format
	Hash       string   `json:"hash"`      // SHA256 hex digest of the cleaned text
	Characters int      `json:"characters"`
	Sections   []string `json:"sections"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, source string) *Metadata {
	return &Metadata{
		Source:     source,
		Format:     strings.TrimPrefix(strings.ToLower(filepath.Ext(source)), "."),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Characters: utf8.RuneCountInString(content),
		Sections:   PreviewSections(content).DetectedSections,
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
