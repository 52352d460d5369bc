package tray

import (
	"bytes"
	"encoding/binary"
)

// ICO returns the icon as a single-image .ico container with the PNG stored
// inline, which Windows accepts since Vista.
func (i Icon) ICO() []byte {
	var buf bytes.Buffer
	// ICONDIR: reserved, type (1 = icon), image count
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})
	buf.WriteByte(icoDim(i.Width))
	buf.WriteByte(icoDim(i.Height))
	buf.WriteByte(0) // palette size
	buf.WriteByte(0) // reserved
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))  // planes
	_ = binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(i.PNG)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(6+16))
	buf.Write(i.PNG)
	return buf.Bytes()
}

// icoDim encodes a dimension; 0 stands for 256 or more.
func icoDim(n int) byte {
	if n <= 0 || n >= 256 {
		return 0
	}
	return byte(n)
}
