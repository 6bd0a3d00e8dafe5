package convert

// CMYK converts c to percentages of cyan, magenta, yellow and key. Pure
// black is (0, 0, 0, 100): with k == 1 the chromatic terms would be 0/0.
func (c RGB) CMYK() CMYK {
	r, g, b := c.unit()
	k := 1 - max(r, g, b)
	if k == 1 {
		return CMYK{K: MaxPercent}
	}

	return CMYK{
		C: round((1 - r - k) / (1 - k) * MaxPercent),
		M: round((1 - g - k) / (1 - k) * MaxPercent),
		Y: round((1 - b - k) / (1 - k) * MaxPercent),
		K: round(k * MaxPercent),
	}
}

// RGB converts c to RGB.
func (c CMYK) RGB() RGB {
	cy := float64(c.C) / MaxPercent
	m := float64(c.M) / MaxPercent
	y := float64(c.Y) / MaxPercent
	k := float64(c.K) / MaxPercent

	return RGB{
		R: round(MaxChannel * (1 - cy) * (1 - k)),
		G: round(MaxChannel * (1 - m) * (1 - k)),
		B: round(MaxChannel * (1 - y) * (1 - k)),
	}
}
