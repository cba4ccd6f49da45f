package files

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/kultura-platform/adminkit/gateway"
)

const (
	basePath    = "/files"
	uploadPath  = basePath + "/upload-simple"
	listPath    = basePath + "/list"
	formField   = "file"
	maxSize     = 5 << 20
	maxNameLen  = 100
	defaultFile = "default.jpg"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// UploadResult is the backend's answer to a completed upload.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Message  string `json:"message"`
}

// Listing is the backend's directory listing of stored images.
type Listing struct {
	Folder    string   `json:"folder"`
	Count     int      `json:"count"`
	Files     []string `json:"files"`
	Timestamp int64    `json:"timestamp"`
}

// ValidateImage applies the client-side upload limits: image extension,
// size at most 5MB, filename at most 100 characters.
func ValidateImage(filename string, size int64) error {
	ext := strings.ToLower(path.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q: use jpg, jpeg, png, gif, webp, or bmp", ext)
	}
	if size > maxSize {
		return fmt.Errorf("file too large: maximum 5MB")
	}
	if len(filename) > maxNameLen {
		return fmt.Errorf("filename too long: maximum %d characters", maxNameLen)
	}
	return nil
}

// Client exposes the backend's image storage endpoints.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates a file client sharing the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// Upload validates and sends one image. size is the content length used for
// client-side validation only; the backend enforces its own limits.
func (c *Client) Upload(ctx context.Context, filename string, size int64, r io.Reader) (UploadResult, error) {
	if err := ValidateImage(filename, size); err != nil {
		return UploadResult{}, err
	}

	var result UploadResult
	if err := c.gw.PostMultipart(ctx, uploadPath, formField, filename, r, &result); err != nil {
		return UploadResult{}, err
	}
	return result, nil
}

// List returns the stored image listing.
func (c *Client) List(ctx context.Context) (Listing, error) {
	var listing Listing
	if err := c.gw.Get(ctx, listPath, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

// Delete removes a stored image.
func (c *Client) Delete(ctx context.Context, filename string) error {
	return c.gw.Delete(ctx, basePath+"/"+filename)
}

// URL resolves a stored filename to a fetchable URL. A blank filename
// resolves to the backend's default image; an absolute URL is returned
// unchanged.
func (c *Client) URL(filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		name = defaultFile
	}
	if strings.HasPrefix(name, "http") {
		return name
	}
	return c.gw.BaseURL() + basePath + "/" + name
}
