package tui

import "testing"

// pixelSet reports whether a micro pixel is lit in the buffer.
func pixelSet(b *brailleBuf, mx, my int) bool {
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx < 0 || cx >= b.w || cy < 0 || cy >= b.h {
		return false
	}
	bits := [2][4]uint8{
		{0x01, 0x02, 0x04, 0x40},
		{0x08, 0x10, 0x20, 0x80},
	}
	return b.m[cy][cx]&bits[rx][ry] != 0
}

func TestSetPixelBits(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	if b.m[0][0] != 0x01 {
		t.Errorf("mask = %#x, want 0x01", b.m[0][0])
	}
	b.setPixel(1, 3)
	if b.m[0][0] != 0x01|0x80 {
		t.Errorf("mask = %#x, want 0x81", b.m[0][0])
	}
	b.setPixel(2, 0)
	if b.m[0][1] != 0x01 {
		t.Errorf("second cell mask = %#x, want 0x01", b.m[0][1])
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	b := newBrailleBuf(1, 1)
	b.setPixel(-1, 0)
	b.setPixel(0, -1)
	b.setPixel(2, 0)
	b.setPixel(0, 4)
	if b.m[0][0] != 0 {
		t.Errorf("mask = %#x, want 0", b.m[0][0])
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.drawLine(0, 0, 3, 0)
	for mx := 0; mx <= 3; mx++ {
		if !pixelSet(b, mx, 0) {
			t.Errorf("pixel (%d,0) not set", mx)
		}
	}
	if pixelSet(b, 0, 1) {
		t.Error("pixel (0,1) set unexpectedly")
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.drawLine(0, 0, 3, 3)
	for i := 0; i <= 3; i++ {
		if !pixelSet(b, i, i) {
			t.Errorf("pixel (%d,%d) not set", i, i)
		}
	}
}

func TestFillRingsSquare(t *testing.T) {
	b := newBrailleBuf(4, 2) // 8x8 micro pixels
	b.fillRings([][][2]int{{{0, 0}, {7, 0}, {7, 7}, {0, 7}}})
	if !pixelSet(b, 3, 3) {
		t.Error("interior pixel (3,3) not filled")
	}
	if !pixelSet(b, 0, 0) {
		t.Error("corner pixel (0,0) not filled")
	}
	// the scanline at the top edge of the ring is exclusive
	if pixelSet(b, 3, 7) {
		t.Error("pixel on exclusive top edge filled")
	}
}

func TestFillRingsHole(t *testing.T) {
	b := newBrailleBuf(8, 4) // 16x16 micro pixels
	outer := [][2]int{{0, 0}, {15, 0}, {15, 15}, {0, 15}}
	hole := [][2]int{{4, 4}, {11, 4}, {11, 11}, {4, 11}}
	b.fillRings([][][2]int{outer, hole})
	if !pixelSet(b, 2, 8) {
		t.Error("pixel between outer ring and hole not filled")
	}
	if pixelSet(b, 8, 8) {
		t.Error("pixel inside hole filled")
	}
}

func TestToLines(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	lines := b.toLines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	got := []rune(lines[0])
	if got[0] != '⠁' {
		t.Errorf("first cell = %q, want ⠁", got[0])
	}
	if got[1] != ' ' {
		t.Errorf("empty cell = %q, want space", got[1])
	}
}
