// Package document reads a source dictionary into an ordered list of paragraphs.
package document

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Paragraph is one paragraph of the source document.
type Paragraph struct {
	Text  string
	Index int
}

// Format identifies how a source is decoded into paragraphs.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// Options controls how sources are read.
type Options struct {
	// RetryAttempts is the number of retries for remote sources after the first attempt.
	RetryAttempts uint
}

// DetectFormat picks the decoder from the file extension. Unknown extensions are read as text.
func DetectFormat(name string) Format {
	ext := strings.ToLower(filepath.Ext(name))
	if isRemote(name) {
		ext = strings.ToLower(path.Ext(strings.SplitN(name, "?", 2)[0]))
	}
	switch ext {
	case ".docx":
		return FormatDOCX
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// Read loads the source at a local path or an http(s) URL and returns its paragraphs.
func Read(ctx context.Context, source string, opts Options) ([]Paragraph, error) {
	var (
		content []byte
		err     error
	)
	if isRemote(source) {
		content, err = fetch(ctx, source, opts.RetryAttempts)
		if err != nil {
			return nil, fmt.Errorf("fetch(%s) > %w", source, err)
		}
	} else {
		content, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", source, err)
		}
	}

	paragraphs, err := Decode(content, DetectFormat(source))
	if err != nil {
		return nil, fmt.Errorf("Decode(%s) > %w", source, err)
	}
	slog.Debug("read source document", "source", source, "paragraphs", len(paragraphs))
	return paragraphs, nil
}

// Decode splits raw document content into paragraphs.
func Decode(content []byte, format Format) ([]Paragraph, error) {
	var (
		texts []string
		err   error
	)
	switch format {
	case FormatDOCX:
		texts, err = decodeDOCX(content)
	case FormatHTML:
		texts, err = decodeHTML(content)
	default:
		texts, err = decodeText(bytes.NewReader(content))
	}
	if err != nil {
		return nil, err
	}

	paragraphs := make([]Paragraph, len(texts))
	for i, text := range texts {
		paragraphs[i] = Paragraph{
			Text:  norm.NFC.String(text),
			Index: i,
		}
	}
	return paragraphs, nil
}

func decodeText(r io.Reader) ([]string, error) {
	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		texts = append(texts, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan > %w", err)
	}
	return texts, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
