package sink

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/image-binarize/internal/config"
)

func testComposite() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 8, 6))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 5)
	}
	return img
}

func TestFileSink_Emit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resultado.png")
	var out bytes.Buffer
	s := &FileSink{Path: path, Out: &out}

	src := testComposite()
	if err := s.Emit(src); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if want := "Result saved to: " + path + "\n"; out.String() != want {
		t.Errorf("message: got %q, want %q", out.String(), want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	gray, ok := decoded.(*image.Gray)
	if !ok {
		t.Fatalf("expected grayscale PNG, got %T", decoded)
	}
	if gray.Rect != src.Rect {
		t.Errorf("bounds: got %v, want %v", gray.Rect, src.Rect)
	}
	if !bytes.Equal(gray.Pix, src.Pix) {
		t.Error("saved pixels differ from the source")
	}
}

func TestFileSink_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resultado.png")
	if err := os.WriteFile(path, []byte("stale content that is not a png"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	s := &FileSink{Path: path}
	if err := s.Emit(testComposite()); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("output should be a PNG after overwrite: %v", err)
	}
}

func TestFileSink_UnwritablePath(t *testing.T) {
	s := &FileSink{Path: filepath.Join(t.TempDir(), "missing-dir", "resultado.png")}

	err := s.Emit(testComposite())
	if err == nil || !strings.Contains(err.Error(), "failed to save result") {
		t.Errorf("expected save error, got %v", err)
	}
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer

	t.Run("save selects file sink", func(t *testing.T) {
		s := New(true, cfg, &out)
		fs, ok := s.(*FileSink)
		if !ok {
			t.Fatalf("got %T, want *FileSink", s)
		}
		if fs.Path != config.DefaultOutputPath {
			t.Errorf("Path: got %q, want %q", fs.Path, config.DefaultOutputPath)
		}
	})

	t.Run("default selects display sink", func(t *testing.T) {
		s := New(false, cfg, &out)
		ds, ok := s.(*DisplaySink)
		if !ok {
			t.Fatalf("got %T, want *DisplaySink", s)
		}
		if ds.Title != config.DefaultWindowTitle {
			t.Errorf("Title: got %q, want %q", ds.Title, config.DefaultWindowTitle)
		}
	})
}
