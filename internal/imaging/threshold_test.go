package imaging

import (
	"errors"
	"image"
	"testing"
)

// createRampGray returns a 256x1 image whose pixel x has intensity x.
func createRampGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 256, 1))
	for x := range img.Pix {
		img.Pix[x] = uint8(x)
	}
	return img
}

func TestThreshold_Boundary(t *testing.T) {
	src := createRampGray()

	binary := Threshold(src, 160, false)
	inverse := Threshold(src, 160, true)

	if v := binary.GrayAt(160, 0).Y; v != 255 {
		t.Errorf("binary at threshold: got %d, want 255", v)
	}
	if v := inverse.GrayAt(160, 0).Y; v != 0 {
		t.Errorf("inverse at threshold: got %d, want 0", v)
	}
	if v := binary.GrayAt(159, 0).Y; v != 0 {
		t.Errorf("binary below threshold: got %d, want 0", v)
	}
	if v := inverse.GrayAt(159, 0).Y; v != 255 {
		t.Errorf("inverse below threshold: got %d, want 255", v)
	}
}

func TestThreshold_Complement(t *testing.T) {
	src := createRampGray()

	for _, threshold := range []int{0, 1, 127, 160, 254, 255} {
		binary := Threshold(src, threshold, false)
		inverse := Threshold(src, threshold, true)
		for i := range binary.Pix {
			b, inv := binary.Pix[i], inverse.Pix[i]
			if (b == 255) != (inv == 0) || b+inv != 255 {
				t.Fatalf("threshold %d, pixel %d: binary %d, inverse %d", threshold, i, b, inv)
			}
		}
	}
}

func TestThreshold_OutOfRange(t *testing.T) {
	src := createRampGray()

	tests := []struct {
		name      string
		threshold int
		want      uint8
	}{
		{"above range", 300, 0},
		{"negative", -5, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Threshold(src, tt.threshold, false)
			for i, v := range got.Pix {
				if v != tt.want {
					t.Fatalf("pixel %d: got %d, want %d", i, v, tt.want)
				}
			}
		})
	}
}

func TestMask(t *testing.T) {
	src := createRampGray()
	inverse := Threshold(src, 100, true)

	got, err := Mask(src, inverse)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}

	for x := range got.Pix {
		v := got.Pix[x]
		switch {
		case inverse.Pix[x] == 255 && v != src.Pix[x]:
			t.Errorf("pixel %d: got %d, want original %d", x, v, src.Pix[x])
		case inverse.Pix[x] == 0 && v != 0:
			t.Errorf("pixel %d: got %d, want 0", x, v)
		}
	}
}

func TestMask_SizeMismatch(t *testing.T) {
	_, err := Mask(createInMemoryGray(4, 4, 1), createInMemoryGray(4, 5, 255))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}
