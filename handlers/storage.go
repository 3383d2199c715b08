package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"medibook/models"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 5 << 20

// openImage returns the optional multipart image field. A nil reader means no image
// was sent. The caller closes the returned file.
func openImage(c *gin.Context, field string) (io.ReadCloser, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Size > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("unsupported image type %q", ct)
	}
	return fh.Open()
}

// parseAddress decodes the JSON-encoded address form field. An empty field yields
// nil.
func parseAddress(raw string) (*models.Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var addr models.Address
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		return nil, fmt.Errorf("address must be a JSON object: %w", err)
	}
	return &addr, nil
}
