package export

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"

	"github.com/archplot/archplot/pkg/errors"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const metersPerInch = 0.0254

// ihdrEnd is the offset just past the IHDR chunk: 8 signature bytes plus
// 8 header bytes, 13 data bytes, 4 CRC bytes.
const ihdrEnd = 8 + 8 + 13 + 4

// withDPI inserts a pHYs chunk right after IHDR declaring the pixel
// density in pixels per meter. The stdlib PNG encoder never writes one.
func withDPI(data []byte, dpi float64) ([]byte, error) {
	if len(data) < ihdrEnd || !bytes.HasPrefix(data, pngSignature) || string(data[12:16]) != "IHDR" {
		return nil, errors.New(errors.ErrCodeInternal, "raster backend returned malformed PNG data")
	}

	ppu := uint32(math.Round(dpi / metersPerInch))
	chunk := make([]byte, 21)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppu)
	binary.BigEndian.PutUint32(chunk[12:16], ppu)
	chunk[16] = 1 // unit: meter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, data[ihdrEnd:]...)
	return out, nil
}

// pngDPI reads the density back from a pHYs chunk. Reports false when the
// chunk is absent or its unit is not meters.
func pngDPI(data []byte) (float64, bool) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, false
	}
	off := 8
	for off+12 <= len(data) {
		n := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		if typ == "pHYs" {
			if n != 9 || off+8+n > len(data) || data[off+16] != 1 {
				return 0, false
			}
			ppu := binary.BigEndian.Uint32(data[off+8 : off+12])
			return float64(ppu) * metersPerInch, true
		}
		if typ == "IEND" {
			break
		}
		off += 12 + n
	}
	return 0, false
}
