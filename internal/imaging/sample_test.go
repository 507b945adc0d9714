package imaging

import (
	"errors"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/ironsheep/bounding-box/internal/grid"
)

func TestGridFromImage_RoundTrip(t *testing.T) {
	lines := []string{
		"**-------***",
		"-*--------**",
		"----------*-",
		"-------*----",
	}
	for _, cs := range []int{1, 3, 8} {
		g, err := GridFromImage(paintGrid(lines, cs), SampleOptions{CellSize: cs, Threshold: 128})
		if err != nil {
			t.Fatalf("cell size %d: %v", cs, err)
		}
		if got := g.Lines(); !reflect.DeepEqual(got, lines) {
			t.Errorf("cell size %d: got %v, want %v", cs, got, lines)
		}
	}
}

func TestGridFromImage_MajorityVote(t *testing.T) {
	// 4x4 block with 9 dark pixels (marked) next to one with 8 (blank, tie).
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	dark := color.NRGBA{10, 10, 10, 255}
	for i := 0; i < 9; i++ {
		img.SetNRGBA(i%4, i/4, dark)
	}
	for i := 0; i < 8; i++ {
		img.SetNRGBA(4+i%4, i/4, dark)
	}

	g, err := GridFromImage(img, SampleOptions{CellSize: 4, Threshold: 128})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Lines(); !reflect.DeepEqual(got, []string{"*-"}) {
		t.Errorf("got %v, want [*-]", got)
	}
}

func TestGridFromImage_Threshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{100, 100, 100, 255})
	img.SetNRGBA(1, 0, color.NRGBA{200, 200, 200, 255})

	tests := []struct {
		threshold uint8
		want      string
	}{
		{50, "--"},
		{150, "*-"},
		{250, "**"},
	}
	for _, tt := range tests {
		g, err := GridFromImage(img, SampleOptions{CellSize: 1, Threshold: tt.threshold})
		if err != nil {
			t.Fatal(err)
		}
		if got := g.Lines()[0]; got != tt.want {
			t.Errorf("threshold %d: got %q, want %q", tt.threshold, got, tt.want)
		}
	}
}

func TestGridFromImage_TransparentIsBlank(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})

	g, err := GridFromImage(img, DefaultSampleOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"*-", "--"}
	if got := g.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGridFromImage_PartialCells(t *testing.T) {
	img := paintGrid([]string{"*****"}, 1)
	g, err := GridFromImage(img, SampleOptions{CellSize: 2, Threshold: 128})
	if err != nil {
		t.Fatal(err)
	}
	if g.Cols() != 3 || g.Rows() != 1 {
		t.Fatalf("got %dx%d, want 1x3", g.Rows(), g.Cols())
	}
	if got := g.Lines()[0]; got != "***" {
		t.Errorf("got %q, want ***", got)
	}
}

func TestGridFromImage_Errors(t *testing.T) {
	if _, err := GridFromImage(paintGrid([]string{"*"}, 1), SampleOptions{CellSize: 0}); !errors.Is(err, ErrInvalidCellSize) {
		t.Errorf("cell size 0: got %v, want ErrInvalidCellSize", err)
	}
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := GridFromImage(empty, DefaultSampleOptions()); !errors.Is(err, grid.ErrEmptyInput) {
		t.Errorf("empty image: got %v, want ErrEmptyInput", err)
	}
}

func TestLoadGrid(t *testing.T) {
	lines := []string{"*-*", "-*-"}
	path := writePNG(t, paintGrid(lines, 5))

	g, err := LoadGrid(NewImageCache(), path, SampleOptions{CellSize: 5, Threshold: 128})
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	if got := g.Lines(); !reflect.DeepEqual(got, lines) {
		t.Errorf("got %v, want %v", got, lines)
	}

	if _, err := LoadGrid(NewImageCache(), "/nonexistent.png", DefaultSampleOptions()); err == nil {
		t.Error("LoadGrid should fail for a missing file")
	}
}
