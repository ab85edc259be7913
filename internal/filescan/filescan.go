// Package filescan extracts text from uploaded documents and classifies it
// against the legal-topic rule set, for the document-analysis endpoint.
package filescan

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"cyberlaw-chat/internal/responder"
)

const excerptLimit = 300

type Result struct {
	Name    string           `json:"name"`
	Size    int64            `json:"size"`
	Intent  responder.Intent `json:"intent"`
	Excerpt string           `json:"excerpt"`
	Reply   string           `json:"reply"`
}

// Analyze extracts what text it can from the document and runs the topic
// classifier over it. Unsupported content types yield a result classified
// from the file name alone.
func Analyze(name, contentType string, data []byte) (*Result, error) {
	text, err := extractText(name, contentType, data)
	if err != nil {
		return nil, err
	}

	source := text
	if strings.TrimSpace(source) == "" {
		source = name
	}

	intent, reply := responder.Compose(source)
	return &Result{
		Name:    name,
		Size:    int64(len(data)),
		Intent:  intent,
		Excerpt: excerpt(text),
		Reply:   reply,
	}, nil
}

func extractText(name, contentType string, data []byte) (string, error) {
	switch {
	case contentType == "application/pdf" || strings.HasSuffix(strings.ToLower(name), ".pdf"):
		return extractPDFText(data)
	case strings.HasPrefix(contentType, "text/") || strings.HasSuffix(strings.ToLower(name), ".txt"):
		if !utf8.Valid(data) {
			return "", fmt.Errorf("text file is not valid utf-8")
		}
		return string(data), nil
	default:
		return "", nil
	}
}

func extractPDFText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf failed: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text failed: %w", err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read pdf text failed: %w", err)
	}
	return string(out), nil
}

func excerpt(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= excerptLimit {
		return text
	}
	cut := text[:excerptLimit]
	// back off to a rune boundary
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut + "..."
}
