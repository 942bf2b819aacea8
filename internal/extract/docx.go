package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// ExtractDocx reads word/document.xml out of a DOCX archive and returns
// its paragraphs joined with newlines. Only the pieces the classifier
// needs survive: paragraph text and order.
func ExtractDocx(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var out strings.Builder
	var para strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				para.Reset()
			case "tab":
				if inParagraph {
					para.WriteByte(' ')
				}
			case "br":
				if inParagraph {
					para.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inParagraph {
				para.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				text := strings.TrimSpace(para.String())
				if text != "" {
					out.WriteString(text)
					out.WriteByte('\n')
				}
			}
		}
	}

	return NormalizeText(out.String()), nil
}
