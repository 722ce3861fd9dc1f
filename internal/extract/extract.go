package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF        = "application/pdf"
	mimeDOCX       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeLegacyWord = "application/msword"
)

// ErrUnsupportedType is returned when the declared MIME type is not a
// document format we can read.
var ErrUnsupportedType = errors.New("unsupported file type")

// FromUpload extracts plain text from an uploaded document, dispatching on
// the declared MIME type.
func FromUpload(data []byte, contentType string) (string, error) {
	switch contentType {
	case mimePDF:
		return fromPDF(data)
	case mimeDOCX, mimeLegacyWord:
		return fromWord(data)
	default:
		return "", ErrUnsupportedType
	}
}

func fromPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error processing PDF file: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error processing PDF file: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error processing PDF file: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("error processing PDF file: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// fromWord reads paragraph text out of the OOXML document part. Legacy
// binary .doc files are not zip archives and fail here with a read error.
func fromWord(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error processing Word file: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("error processing Word file: no document part")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("error processing Word file: %w", err)
	}
	defer rc.Close()

	text, err := paragraphText(rc)
	if err != nil {
		return "", fmt.Errorf("error processing Word file: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func paragraphText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
