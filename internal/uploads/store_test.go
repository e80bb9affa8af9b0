package uploads

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSaveGeneratesKeyIndependentOfFilename(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	saved, err := store.Save("../../etc/passwd.png", bytes.NewReader(pngBytes(t)))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if strings.Contains(saved.Key, "..") || strings.Contains(saved.Key, "/") {
		t.Errorf("key %q leaks client filename", saved.Key)
	}
	if !strings.HasPrefix(saved.Path, "/static/uploads/") {
		t.Errorf("unexpected public path %q", saved.Path)
	}

	if _, err := os.Stat(filepath.Join(store.Dir, saved.Key)); err != nil {
		t.Errorf("original not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir, thumbName(saved.Key))); err != nil {
		t.Errorf("thumbnail not written: %v", err)
	}

	// Nothing escaped the uploads directory.
	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected original + thumbnail only, got %d entries", len(entries))
	}
}

func TestSaveRejectsNonImagePayload(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	_, err = store.Save("notes.png", strings.NewReader("definitely not a png"))
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected payload left files behind: %v", entries)
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	_, err = store.Save("script.sh", bytes.NewReader(pngBytes(t)))
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage for .sh, got %v", err)
	}
}

func TestRemoveDeletesPair(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	saved, err := store.Save("photo.png", bytes.NewReader(pngBytes(t)))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Remove(saved.Key); err != nil {
		t.Fatalf("remove: %v", err)
	}

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("remove left files behind: %v", entries)
	}

	// Removing an already-removed key is not an error.
	if err := store.Remove(saved.Key); err != nil {
		t.Errorf("second remove: %v", err)
	}
}
