package scan

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	// Register decoders for every recognized extension so both the
	// dimension probe and the later full decode can read them.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrNotADirectory = errors.New("not a directory")
	ErrNoImages      = errors.New("no images found")
)

// ImageFile is one discovered source image with its natural pixel size.
type ImageFile struct {
	Path   string
	Width  int
	Height int
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Images lists the image files directly inside dir (non-recursive), sorted
// by filename. The order is load-bearing: it fixes row-major grid placement,
// so it must be stable across runs on an unchanged directory.
func Images(dir string) ([]ImageFile, error) {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR):
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	case err != nil:
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]ImageFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		w, h, err := probeSize(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read image %s: %w", path, err)
		}

		files = append(files, ImageFile{Path: path, Width: w, Height: h})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}

	return files, nil
}

// probeSize reads only the image header, not the pixel data.
func probeSize(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}

	return cfg.Width, cfg.Height, nil
}
