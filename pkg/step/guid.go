package step

import (
	"fmt"

	"github.com/google/uuid"
)

// guidChars is the 64-character alphabet IFC uses to compress a UUID into
// 22 characters. It is not the RFC 4648 base64 alphabet.
const guidChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// CompressGUID encodes a UUID as a 22-character IFC GlobalId: the first
// byte becomes two characters, then each 3-byte group becomes four.
func CompressGUID(u uuid.UUID) string {
	out := make([]byte, 0, 22)
	out = appendBase64(out, uint32(u[0]), 2)
	for i := 1; i < 16; i += 3 {
		v := uint32(u[i])<<16 | uint32(u[i+1])<<8 | uint32(u[i+2])
		out = appendBase64(out, v, 4)
	}
	return string(out)
}

func appendBase64(dst []byte, v uint32, width int) []byte {
	chars := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		chars[i] = guidChars[v%64]
		v /= 64
	}
	return append(dst, chars...)
}

// ExpandGUID decodes a 22-character GlobalId back into a UUID.
func ExpandGUID(guid string) (uuid.UUID, error) {
	var u uuid.UUID
	if len(guid) != 22 {
		return u, fmt.Errorf("GlobalId must be 22 characters, got %d", len(guid))
	}

	digit := func(c byte) (uint32, error) {
		for i := 0; i < len(guidChars); i++ {
			if guidChars[i] == c {
				return uint32(i), nil
			}
		}
		return 0, fmt.Errorf("invalid GlobalId character %q", c)
	}

	d0, err := digit(guid[0])
	if err != nil {
		return u, err
	}
	d1, err := digit(guid[1])
	if err != nil {
		return u, err
	}
	first := d0*64 + d1
	if first > 0xFF {
		return u, fmt.Errorf("GlobalId value out of range: %q", guid)
	}
	u[0] = byte(first)

	for group := 0; group < 5; group++ {
		var v uint32
		for j := 0; j < 4; j++ {
			d, err := digit(guid[2+group*4+j])
			if err != nil {
				return u, err
			}
			v = v*64 + d
		}
		u[1+group*3] = byte(v >> 16)
		u[2+group*3] = byte(v >> 8)
		u[3+group*3] = byte(v)
	}
	return u, nil
}

// NewGlobalID returns a fresh random GlobalId.
func NewGlobalID() string {
	return CompressGUID(uuid.New())
}
