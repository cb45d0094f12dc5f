package render

import "image/color"

// fillSpinRGBA converts binary cell data (1 = spin up, 0 = spin down) into
// RGBA pixels in buf.
func fillSpinRGBA(buf []byte, cells []uint8, up, down color.Color) {
	rUp, gUp, bUp, aUp := up.RGBA()
	rDown, gDown, bDown, aDown := down.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rUp >> 8)
			buf[base+1] = uint8(gUp >> 8)
			buf[base+2] = uint8(bUp >> 8)
			buf[base+3] = uint8(aUp >> 8)
			continue
		}
		buf[base+0] = uint8(rDown >> 8)
		buf[base+1] = uint8(gDown >> 8)
		buf[base+2] = uint8(bDown >> 8)
		buf[base+3] = uint8(aDown >> 8)
	}
}
