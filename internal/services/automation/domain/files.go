package domain

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const fileResourceMIMEFallback = "application/octet-stream"

// FileResourceTemplate defines the filesystem resource exposed by the server.
func FileResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "file",
		Title:       "Filesystem",
		Description: "Reads a file or lists a directory on the host machine",
		MIMEType:    "text/plain",
		URITemplate: "file:///{path}",
	}
}

// FileResourceHandler serves file:// URIs. Directories yield a text listing;
// files yield their content, as text when the payload is valid UTF-8 with a
// text-like MIME type and as a base64 blob otherwise. A missing path is an
// error: resource failures cross the protocol boundary, unlike tool
// failures.
func FileResourceHandler() mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("file path is required; use URI format file:///{path}")
		}
		uri := req.Params.URI

		path, err := parseFilePathFromURI(uri)
		if err != nil {
			return nil, fmt.Errorf("parse file path from URI: %w", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			listing, err := listDirectory(path)
			if err != nil {
				return nil, err
			}
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: uri, MIMEType: "text/plain", Text: listing},
				},
			}, nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		mimeType := mimeTypeForFile(path)
		if isTextMIME(mimeType) && utf8.Valid(data) {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{
					{URI: uri, MIMEType: mimeType, Text: string(data)},
				},
			}, nil
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: uri, MIMEType: mimeType, Blob: data},
			},
		}, nil
	}
}

// parseFilePathFromURI extracts the filesystem path from a file:// URI.
func parseFilePathFromURI(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if parsed.Scheme != "file" {
		return "", fmt.Errorf("unexpected scheme %q", parsed.Scheme)
	}
	path, err := url.PathUnescape(parsed.Path)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("empty path in %q", uri)
	}
	// Windows drive paths arrive as /C:/dir/file.
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func listDirectory(path string) (string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", path, err)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Directory listing for %s:\n", path)
	for _, entry := range entries {
		if entry.IsDir() {
			fmt.Fprintf(&sb, "[dir]  %s\n", entry.Name())
			continue
		}
		fmt.Fprintf(&sb, "[file] %s\n", entry.Name())
	}
	return sb.String(), nil
}

func mimeTypeForFile(path string) string {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		return fileResourceMIMEFallback
	}
	return mimeType
}

func isTextMIME(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	switch {
	case strings.Contains(mimeType, "json"),
		strings.Contains(mimeType, "xml"),
		strings.Contains(mimeType, "javascript"),
		strings.Contains(mimeType, "yaml"):
		return true
	}
	return false
}
