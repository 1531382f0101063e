package transcode

import "encoding/binary"

// cursor reads a caller-owned buffer front to back without writing to it.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) done() bool {
	return c.off == len(c.buf)
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// header reads the legacy 5-byte header at the cursor. The wire order is
// [type u8][size u32 LE]: the type byte comes first and the size follows.
// A written example that shows the size first does not match real streams,
// and the encoder never sees the size bytes. The cursor does not move.
func (c *cursor) header() (msgType uint8, size uint32) {
	h := c.buf[c.off : c.off+HeaderSize]
	return h[0], binary.LittleEndian.Uint32(h[1:HeaderSize])
}

// payload returns the size bytes following the header, or false when the
// buffer ends first.
func (c *cursor) payload(size uint32) ([]byte, bool) {
	start := c.off + HeaderSize
	if uint64(size) > uint64(len(c.buf)-start) {
		return nil, false
	}
	return c.buf[start : start+int(size)], true
}

// advance moves past a message whose type byte and payload the encoder
// consumed in bytesRead bytes. The size field is the part of the header
// the encoder never sees.
func (c *cursor) advance(bytesRead int) {
	c.off += HeaderSize - 1 + bytesRead
}
