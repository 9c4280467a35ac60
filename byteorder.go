package bmask

import "unsafe"

// isLittleEndian reports the host byte order, used only by the 24-bit pixel
// path: byte order within 24-bit pixels follows host endianness.
var isLittleEndian = func() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()
