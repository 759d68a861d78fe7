package main

import (
	"bytes"
	"encoding/binary"
	"sync"
)

// The tray icon is a 16x16 blue square with a lighter inner field,
// assembled as a 32bpp ICO at startup. Generating it beats shipping a
// binary asset for something this small.

const iconSize = 16

var (
	iconOnce  sync.Once
	iconBytes []byte
)

func defaultIcon() []byte {
	iconOnce.Do(func() {
		iconBytes = buildIcon()
	})
	return iconBytes
}

func buildIcon() []byte {
	const (
		headerLen = 40
		xorLen    = iconSize * iconSize * 4
		andLen    = iconSize * 4 // 1bpp rows padded to 32 bits
	)

	var buf bytes.Buffer
	le := binary.LittleEndian

	// ICONDIR
	_ = binary.Write(&buf, le, uint16(0)) // reserved
	_ = binary.Write(&buf, le, uint16(1)) // type: icon
	_ = binary.Write(&buf, le, uint16(1)) // image count

	// ICONDIRENTRY
	buf.WriteByte(iconSize)
	buf.WriteByte(iconSize)
	buf.WriteByte(0) // palette size (none)
	buf.WriteByte(0) // reserved
	_ = binary.Write(&buf, le, uint16(1))
	_ = binary.Write(&buf, le, uint16(32))
	_ = binary.Write(&buf, le, uint32(headerLen+xorLen+andLen))
	_ = binary.Write(&buf, le, uint32(22)) // offset past the two headers

	// BITMAPINFOHEADER; height counts XOR and AND blocks together
	_ = binary.Write(&buf, le, uint32(headerLen))
	_ = binary.Write(&buf, le, int32(iconSize))
	_ = binary.Write(&buf, le, int32(iconSize*2))
	_ = binary.Write(&buf, le, uint16(1))
	_ = binary.Write(&buf, le, uint16(32))
	_ = binary.Write(&buf, le, uint32(0)) // BI_RGB
	_ = binary.Write(&buf, le, uint32(xorLen+andLen))
	_ = binary.Write(&buf, le, [4]uint32{}) // resolution and palette fields

	// XOR block: BGRA rows, bottom-up
	border := [4]byte{0x7A, 0x4A, 0x1E, 0xFF} // dark blue
	fill := [4]byte{0xD4, 0x8C, 0x3C, 0xFF}   // lighter blue
	for y := iconSize - 1; y >= 0; y-- {
		for x := 0; x < iconSize; x++ {
			px := fill
			if x == 0 || y == 0 || x == iconSize-1 || y == iconSize-1 {
				px = border
			}
			buf.Write(px[:])
		}
	}

	// AND mask: all zero, fully opaque
	buf.Write(make([]byte, andLen))

	return buf.Bytes()
}
