package convert

// HSL converts c to hue/saturation/lightness. Grays have hue and
// saturation 0.
func (c RGB) HSL() HSL {
	r, g, b := c.unit()
	maxC, minC := max(r, g, b), min(r, g, b)
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}
		h = hue(r, g, b, maxC, d)
	}

	return HSL{
		H: round(h * MaxHue),
		S: round(s * MaxPercent),
		L: round(l * MaxPercent),
	}
}

// RGB converts c to RGB. Components are expected in range; see Clamp.
func (c HSL) RGB() RGB {
	h := float64(c.H) / MaxHue
	s := float64(c.S) / MaxPercent
	l := float64(c.L) / MaxPercent

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return RGB{
		R: round(r * MaxChannel),
		G: round(g * MaxChannel),
		B: round(b * MaxChannel),
	}
}

// hueToChannel evaluates one channel of an HSL color at hue offset t.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
