package scan

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func TestImagesOrderAndFilter(t *testing.T) {
	dir := t.TempDir()

	// Sorted byte-wise, uppercase names come first.
	writePNG(t, filepath.Join(dir, "b.png"), 30, 20)
	writePNG(t, filepath.Join(dir, "a.png"), 10, 40)
	writePNG(t, filepath.Join(dir, "C.PNG"), 25, 25)

	// Ignored: wrong extension, and anything inside a subdirectory.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(sub, "d.png"), 5, 5)

	files, err := Images(dir)
	if err != nil {
		t.Fatalf("Images() error: %v", err)
	}

	want := []ImageFile{
		{Path: filepath.Join(dir, "C.PNG"), Width: 25, Height: 25},
		{Path: filepath.Join(dir, "a.png"), Width: 10, Height: 40},
		{Path: filepath.Join(dir, "b.png"), Width: 30, Height: 20},
	}

	if len(files) != len(want) {
		t.Fatalf("Images() returned %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %+v, want %+v", i, files[i], want[i])
		}
	}
}

func TestImagesNotADirectory(t *testing.T) {
	if _, err := Images(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("Images(missing) error = %v, want ErrNotADirectory", err)
	}

	// A regular file is not a directory either.
	file := filepath.Join(t.TempDir(), "plain.png")
	writePNG(t, file, 1, 1)
	if _, err := Images(file); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("Images(file) error = %v, want ErrNotADirectory", err)
	}

	// Neither is a path that traverses through a regular file (ENOTDIR
	// from stat rather than ErrNotExist).
	if _, err := Images(filepath.Join(file, "child")); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("Images(file/child) error = %v, want ErrNotADirectory", err)
	}
}

func TestImagesNoImages(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("no pictures here"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Images(dir); !errors.Is(err, ErrNoImages) {
		t.Errorf("Images() error = %v, want ErrNoImages", err)
	}
}

func TestImagesCorruptImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Images(dir)
	if err == nil {
		t.Fatal("Images() succeeded on a corrupt image, want error")
	}
	if errors.Is(err, ErrNoImages) || errors.Is(err, ErrNotADirectory) {
		t.Errorf("Images() error = %v, want a decode error", err)
	}
}
