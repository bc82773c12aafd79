package internal

import (
	"bufio"
	"fmt"
	"io"

	"rsc.io/qr"
)

// qrQuiet is the quiet zone, in modules, drawn around the code.
const qrQuiet = 2

// RenderQR writes text as a terminal QR code using half-block characters,
// two module rows per output line. Dark modules print as spaces on a light
// background so the code scans on dark terminals as well.
func RenderQR(w io.Writer, text string) error {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return fmt.Errorf("qr encode: %w", err)
	}

	black := func(x, y int) bool {
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return false
		}
		return code.Black(x, y)
	}

	bw := bufio.NewWriter(w)
	for y := -qrQuiet; y < code.Size+qrQuiet; y += 2 {
		for x := -qrQuiet; x < code.Size+qrQuiet; x++ {
			top, bottom := black(x, y), black(x, y+1)
			switch {
			case top && bottom:
				bw.WriteRune(' ')
			case top:
				bw.WriteRune('▄')
			case bottom:
				bw.WriteRune('▀')
			default:
				bw.WriteRune('█')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
