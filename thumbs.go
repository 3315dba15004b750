package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/image/draw"
)

const jpegQuality = 80

// ErrNotFound is returned when a requested asset is not part of the site.
var ErrNotFound = errors.New("portfolio: not found")

// ThumbnailCache scales catalog images down for the project cards and keeps
// the encoded JPEGs in memory with a TTL. The lightbox shows the original.
type ThumbnailCache struct {
	mu      sync.RWMutex
	entries map[string]thumbnail
	ttl     time.Duration
	width   int
	dir     string
	catalog *Catalog
}

type thumbnail struct {
	data    []byte
	fetched time.Time
}

// NewThumbnailCache creates a cache serving thumbnails of catalog images
// found under dir.
func NewThumbnailCache(catalog *Catalog, dir string, width int, ttl time.Duration) *ThumbnailCache {
	return &ThumbnailCache{
		entries: make(map[string]thumbnail),
		ttl:     ttl,
		width:   width,
		dir:     dir,
		catalog: catalog,
	}
}

func (c *ThumbnailCache) valid(src string) ([]byte, bool) {
	t, ok := c.entries[src]
	if !ok || time.Since(t.fetched) >= c.ttl {
		return nil, false
	}
	return t.data, true
}

// Get returns the JPEG thumbnail for a catalog image URL. It returns
// ErrNotFound for URLs outside the catalog, remote URLs and missing files.
func (c *ThumbnailCache) Get(src string) ([]byte, error) {
	if !c.catalog.HasImage(src) {
		return nil, ErrNotFound
	}
	p, ok := localAssetPath(c.dir, src)
	if !ok {
		return nil, ErrNotFound
	}

	c.mu.RLock()
	if data, ok := c.valid(src); ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if data, ok := c.valid(src); ok {
		return data, nil
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("portfolio: open image %s: %w", src, err)
	}
	defer f.Close()

	data, err := makeThumbnail(f, c.width)
	if err != nil {
		return nil, fmt.Errorf("portfolio: thumbnail %s: %w", src, err)
	}
	c.entries[src] = thumbnail{data: data, fetched: time.Now()}
	return data, nil
}

// Invalidate drops every cached thumbnail.
func (c *ThumbnailCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]thumbnail)
	c.mu.Unlock()
}

// makeThumbnail decodes an image, scales it down to maxWidth if it is wider,
// and encodes it as JPEG.
func makeThumbnail(src io.Reader, maxWidth int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxWidth > 0 && w > maxWidth {
		newH := h * maxWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// isLocalAsset reports whether src is a site-relative path like /images/a.png.
func isLocalAsset(src string) bool {
	return strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//")
}

// localAssetPath maps a site-relative URL onto a file under dir. Paths that
// would escape dir are cleaned back inside it.
func localAssetPath(dir, src string) (string, bool) {
	if !isLocalAsset(src) {
		return "", false
	}
	u, err := url.Parse(src)
	if err != nil || u.Path == "" {
		return "", false
	}
	clean := path.Clean(u.Path)
	if clean == "/" {
		return "", false
	}
	return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), true
}

// ThumbnailURL returns the card image URL for src: the thumbnail endpoint
// for local images, src itself for remote ones.
func ThumbnailURL(src string) string {
	if !isLocalAsset(src) {
		return src
	}
	return "/thumbs/?src=" + url.QueryEscape(src)
}
