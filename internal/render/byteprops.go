package render

import (
	"encoding/binary"
	"fmt"
)

// bytePropertyLabels is the fixed, ordered set of decodes shown in the
// sidebar, read starting at the main region's caret. Grounded on
// original_source's BytePropertiesFormatter (u8/u16/u32, little and big
// endian, signed and unsigned).
var bytePropertyLabels = []string{
	"u8", "i8",
	"u16 LE", "i16 LE", "u16 BE", "i16 BE",
	"u32 LE", "i32 LE", "u32 BE", "i32 BE",
}

// byteProperties decodes as many of bytePropertyLabels as fit in data
// (which should be the up-to-4 bytes starting at the caret, clipped at
// EOF). A decode that needs more bytes than data holds is reported as "--"
// rather than zero-padded, per the supplemented sidebar behavior.
func byteProperties(data []byte) []string {
	out := make([]string, len(bytePropertyLabels))
	for i, label := range bytePropertyLabels {
		out[i] = label + ": " + decodeByteProperty(label, data)
	}
	return out
}

func decodeByteProperty(label string, data []byte) string {
	switch label {
	case "u8":
		if len(data) < 1 {
			return "--"
		}
		return fmt.Sprintf("%d", data[0])
	case "i8":
		if len(data) < 1 {
			return "--"
		}
		return fmt.Sprintf("%d", int8(data[0]))
	case "u16 LE":
		if len(data) < 2 {
			return "--"
		}
		return fmt.Sprintf("%d", binary.LittleEndian.Uint16(data))
	case "i16 LE":
		if len(data) < 2 {
			return "--"
		}
		return fmt.Sprintf("%d", int16(binary.LittleEndian.Uint16(data)))
	case "u16 BE":
		if len(data) < 2 {
			return "--"
		}
		return fmt.Sprintf("%d", binary.BigEndian.Uint16(data))
	case "i16 BE":
		if len(data) < 2 {
			return "--"
		}
		return fmt.Sprintf("%d", int16(binary.BigEndian.Uint16(data)))
	case "u32 LE":
		if len(data) < 4 {
			return "--"
		}
		return fmt.Sprintf("%d", binary.LittleEndian.Uint32(data))
	case "i32 LE":
		if len(data) < 4 {
			return "--"
		}
		return fmt.Sprintf("%d", int32(binary.LittleEndian.Uint32(data)))
	case "u32 BE":
		if len(data) < 4 {
			return "--"
		}
		return fmt.Sprintf("%d", binary.BigEndian.Uint32(data))
	case "i32 BE":
		if len(data) < 4 {
			return "--"
		}
		return fmt.Sprintf("%d", int32(binary.BigEndian.Uint32(data)))
	default:
		return "--"
	}
}
