package imaging

import (
	"encoding/binary"
)

const orientationTag = 0x0112

// Orientation extracts the EXIF orientation (1..8) from a JPEG byte
// stream. It returns 1 (upright) for non-JPEG data, for JPEGs without an
// EXIF segment and for anything that does not parse.
func Orientation(data []byte) int {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return 1
	}

	// walk the JPEG segments up to the start of the scan data
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			return 1
		}
		marker := data[i+1]
		if marker == 0xFF {
			i++
			continue
		}
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD9) {
			// standalone markers without a length field
			i += 2
			continue
		}
		if marker == 0xDA {
			// start of scan, no EXIF segment found
			return 1
		}

		size := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if size < 2 || i+2+size > len(data) {
			return 1
		}
		if marker == 0xE1 {
			return exifOrientation(data[i+4 : i+2+size])
		}
		i += 2 + size
	}

	return 1
}

// exifOrientation reads the orientation tag from an APP1 payload.
func exifOrientation(seg []byte) int {
	if len(seg) < 14 || string(seg[:6]) != "Exif\x00\x00" {
		return 1
	}

	tiff := seg[6:]
	var bo binary.ByteOrder
	switch string(tiff[:2]) {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return 1
	}
	if bo.Uint16(tiff[2:4]) != 42 {
		return 1
	}

	off := int(bo.Uint32(tiff[4:8]))
	if off < 0 || off+2 > len(tiff) {
		return 1
	}

	n := int(bo.Uint16(tiff[off : off+2]))
	for j := 0; j < n; j++ {
		e := off + 2 + j*12
		if e+12 > len(tiff) {
			return 1
		}
		if bo.Uint16(tiff[e:e+2]) != orientationTag {
			continue
		}
		v := int(bo.Uint16(tiff[e+8 : e+10]))
		if v >= 1 && v <= 8 {
			return v
		}
		return 1
	}

	return 1
}
