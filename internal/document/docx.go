package document

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
)

const docxBodyPath = "word/document.xml"

// Body-level paragraphs only. Paragraphs inside text boxes or nested content are not part of the flow.
const docxParagraphXPath = "/*[local-name()='document']/*[local-name()='body']/*[local-name()='p']"

func decodeDOCX(content []byte) ([]string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("zip.NewReader > %w", err)
	}

	file, err := reader.Open(docxBodyPath)
	if err != nil {
		return nil, fmt.Errorf("open %s > %w", docxBodyPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	body, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll(%s) > %w", docxBodyPath, err)
	}

	root, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("xmlquery.Parse > %w", err)
	}
	nodes, err := xmlquery.QueryAll(root, docxParagraphXPath)
	if err != nil {
		return nil, fmt.Errorf("xmlquery.QueryAll > %w", err)
	}

	texts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		var sb strings.Builder
		writeRunText(&sb, node)
		texts = append(texts, sb.String())
	}
	return texts, nil
}

// writeRunText collects the visible text of a paragraph the way Word displays it.
func writeRunText(sb *strings.Builder, node *xmlquery.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		switch child.Data {
		case "t":
			sb.WriteString(child.InnerText())
		case "tab":
			sb.WriteString("\t")
		case "br", "cr":
			sb.WriteString("\n")
		case "txbxContent", "delText", "instrText":
		default:
			writeRunText(sb, child)
		}
	}
}
