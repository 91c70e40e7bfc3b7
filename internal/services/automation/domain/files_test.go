package domain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func readFileResource(t *testing.T, uri string) (*mcp.ReadResourceResult, error) {
	t.Helper()
	handler := FileResourceHandler()
	return handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
}

func TestFileResourceHandlerTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("automation notes"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	result, err := readFileResource(t, "file://"+filepath.ToSlash(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected single content, got %d", len(result.Contents))
	}
	content := result.Contents[0]
	if !strings.HasPrefix(content.MIMEType, "text/plain") {
		t.Errorf("expected text/plain, got %q", content.MIMEType)
	}
	if content.Text != "automation notes" {
		t.Errorf("expected file contents, got %q", content.Text)
	}
	if content.Blob != nil {
		t.Error("text file must not be served as a blob")
	}
}

func TestFileResourceHandlerBinaryFile(t *testing.T) {
	dir := t.TempDir()
	payload := []byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0x01}
	path := filepath.Join(dir, "pixel.png")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	result, err := readFileResource(t, "file://"+filepath.ToSlash(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := result.Contents[0]
	if content.MIMEType != "image/png" {
		t.Errorf("expected image/png, got %q", content.MIMEType)
	}
	if !bytes.Equal(content.Blob, payload) {
		t.Error("expected raw bytes in blob")
	}
}

func TestFileResourceHandlerDirectoryListing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o700); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	result, err := readFileResource(t, "file://"+filepath.ToSlash(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listing := result.Contents[0].Text
	if !strings.Contains(listing, "[file] a.txt") {
		t.Errorf("expected file entry in listing, got %q", listing)
	}
	if !strings.Contains(listing, "[dir]  sub") {
		t.Errorf("expected directory entry in listing, got %q", listing)
	}
}

func TestFileResourceHandlerMissingPath(t *testing.T) {
	if _, err := readFileResource(t, "file:///definitely/not/here"); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestFileResourceHandlerEmptyURI(t *testing.T) {
	handler := FileResourceHandler()
	if _, err := handler(context.Background(), &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{}}); err == nil {
		t.Fatal("expected error for empty URI")
	}
}

func TestParseFilePathFromURI(t *testing.T) {
	cases := []struct {
		name string
		uri  string
		want string
	}{
		{"unix path", "file:///tmp/data.txt", filepath.FromSlash("/tmp/data.txt")},
		{"windows drive", "file:///C:/Users/test.txt", filepath.FromSlash("C:/Users/test.txt")},
		{"escaped space", "file:///tmp/my%20file.txt", filepath.FromSlash("/tmp/my file.txt")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFilePathFromURI(tc.uri)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("rejects other schemes", func(t *testing.T) {
		if _, err := parseFilePathFromURI("http://example.com/x"); err == nil {
			t.Fatal("expected error for non-file scheme")
		}
	})
}
