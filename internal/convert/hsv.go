package convert

import "math"

// HSV converts c to hue/saturation/value. Black has saturation 0.
func (c RGB) HSV() HSV {
	r, g, b := c.unit()
	maxC, minC := max(r, g, b), min(r, g, b)
	d := maxC - minC

	var h, s float64
	if maxC != 0 {
		s = d / maxC
	}
	if maxC != minC {
		h = hue(r, g, b, maxC, d)
	}

	return HSV{
		H: round(h * MaxHue),
		S: round(s * MaxPercent),
		V: round(maxC * MaxPercent),
	}
}

// RGB converts c to RGB. A hue of 360 lands in the same sector as 0.
func (c HSV) RGB() RGB {
	h := float64(c.H) / MaxHue
	s := float64(c.S) / MaxPercent
	v := float64(c.V) / MaxPercent

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return RGB{
		R: round(r * MaxChannel),
		G: round(g * MaxChannel),
		B: round(b * MaxChannel),
	}
}
