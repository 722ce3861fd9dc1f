package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFromUpload(t *testing.T) {
	t.Run("docx paragraphs", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

		text, err := FromUpload(docxBytes(t, doc), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		if err != nil {
			t.Fatalf("FromUpload returned error: %v", err)
		}
		if !strings.Contains(text, "First paragraph.") {
			t.Errorf("missing first paragraph in %q", text)
		}
		if !strings.Contains(text, "Second paragraph.") {
			t.Errorf("runs within a paragraph should be joined, got %q", text)
		}
		if !strings.Contains(text, "First paragraph.\n") {
			t.Errorf("paragraphs should be newline separated, got %q", text)
		}
	})

	t.Run("docx without document part", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, _ := zw.Create("word/styles.xml")
		w.Write([]byte("<styles/>"))
		zw.Close()

		_, err := FromUpload(buf.Bytes(), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		if err == nil {
			t.Fatal("expected error for archive without document part")
		}
	})

	t.Run("legacy word that is not a zip", func(t *testing.T) {
		_, err := FromUpload([]byte("not a zip archive"), "application/msword")
		if err == nil {
			t.Fatal("expected error for non-zip word upload")
		}
		if !strings.Contains(err.Error(), "error processing Word file") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("corrupt pdf", func(t *testing.T) {
		_, err := FromUpload([]byte("%PDF-1.4 garbage"), "application/pdf")
		if err == nil {
			t.Fatal("expected error for corrupt PDF")
		}
		if !strings.Contains(err.Error(), "error processing PDF file") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unsupported mime type", func(t *testing.T) {
		_, err := FromUpload([]byte("hello"), "text/plain")
		if !errors.Is(err, ErrUnsupportedType) {
			t.Fatalf("expected ErrUnsupportedType, got %v", err)
		}
	})
}
