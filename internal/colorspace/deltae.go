package colorspace

import "math"

// DeltaE2000 calculates the CIEDE2000 color difference between two Lab
// colors with the parametric weights KL, KC, and KH all set to 1.
//
// The result is 0 for identical colors and grows as the colors become
// easier to tell apart; a value around 2.3 corresponds to a just
// noticeable difference. The function is symmetric in its arguments
// within floating point tolerance, but it is not a strict metric: the
// triangle inequality is not guaranteed, which is fine for its use as a
// nearest-neighbor score.
//
// All hue arithmetic is done in radians. The implementation follows the
// standard CIEDE2000 pipeline: chroma compensation via the G factor,
// adjusted hue angles with 2π wraparound, the four-term T weighting
// function, and the rotation term that corrects the blue region.
func DeltaE2000(c1, c2 Lab) float64 {
	lMean := (c1.L + c2.L) / 2

	chroma1 := math.Hypot(c1.A, c1.B)
	chroma2 := math.Hypot(c2.A, c2.B)
	chromaMean := (chroma1 + chroma2) / 2

	g := (1 - math.Sqrt(pow7(chromaMean)/(pow7(chromaMean)+pow7(25)))) / 2
	a1Prime := c1.A * (1 + g)
	a2Prime := c2.A * (1 + g)

	chroma1Prime := math.Hypot(a1Prime, c1.B)
	chroma2Prime := math.Hypot(a2Prime, c2.B)
	chromaMeanPrime := (chroma1Prime + chroma2Prime) / 2

	h1Prime := hueAngle(c1.B, a1Prime)
	h2Prime := hueAngle(c2.B, a2Prime)

	var hMeanPrime float64
	if math.Abs(h1Prime-h2Prime) > math.Pi {
		hMeanPrime = (h1Prime + h2Prime + 2*math.Pi) / 2
	} else {
		hMeanPrime = (h1Prime + h2Prime) / 2
	}

	t := 1 -
		0.17*math.Cos(hMeanPrime-math.Pi/6) +
		0.24*math.Cos(2*hMeanPrime) +
		0.32*math.Cos(3*hMeanPrime+math.Pi/30) -
		0.20*math.Cos(4*hMeanPrime-63*math.Pi/180)

	var deltaHPrime float64
	switch {
	case math.Abs(h1Prime-h2Prime) <= math.Pi:
		deltaHPrime = h2Prime - h1Prime
	case h2Prime <= h1Prime:
		deltaHPrime = h2Prime - h1Prime + 2*math.Pi
	default:
		deltaHPrime = h2Prime - h1Prime - 2*math.Pi
	}

	deltaLPrime := c2.L - c1.L
	deltaCPrime := chroma2Prime - chroma1Prime
	deltaHPrime = 2 * math.Sqrt(chroma1Prime*chroma2Prime) * math.Sin(deltaHPrime/2)

	sl := 1 + 0.015*(lMean-50)*(lMean-50)/math.Sqrt(20+(lMean-50)*(lMean-50))
	sc := 1 + 0.045*chromaMeanPrime
	sh := 1 + 0.015*chromaMeanPrime*t

	hMeanDegrees := hMeanPrime * 180 / math.Pi
	deltaTheta := (30 * math.Pi / 180) * math.Exp(-((hMeanDegrees-275)/25)*((hMeanDegrees-275)/25))
	rc := 2 * math.Sqrt(pow7(chromaMeanPrime)/(pow7(chromaMeanPrime)+pow7(25)))
	rt := -rc * math.Sin(2*deltaTheta)

	lTerm := deltaLPrime / sl
	cTerm := deltaCPrime / sc
	hTerm := deltaHPrime / sh

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// hueAngle returns the hue angle of (a, b) in the range [0, 2π).
func hueAngle(b, a float64) float64 {
	h := math.Atan2(b, a)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

func pow7(x float64) float64 {
	x3 := x * x * x
	return x3 * x3 * x
}
