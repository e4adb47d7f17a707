package shades

import (
	"github.com/lucasb-eyer/go-colorful"
)

// CSS Color 4 matrices that go-colorful does not carry. go-colorful's XYZ
// is D65, so D50 values (lab, lch, xyz-d50) go through Bradford first.
var (
	bradfordD50ToD65 = [3][3]float64{
		{0.955473421488075, -0.02309845494876471, 0.06325924320057072},
		{-0.0283697093338637, 1.0099953980813041, 0.021041441191917323},
		{0.012314014864481998, -0.020507649298898964, 1.330365926242124},
	}
	linearP3ToXYZ = [3][3]float64{
		{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
		{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
		{0, 0.04511338185890264, 1.043944368900976},
	}
)

// toXYZ converts a colour in one of the CIE or predefined spaces to D65 XYZ
func toXYZ(g Generic) (x, y, z float64) {
	v := g.V
	switch g.Space {
	case SpaceLab:
		// go-colorful scales L, a and b down by 100
		x, y, z = colorful.LabToXyzWhiteRef(v[0]/100, v[1]/100, v[2]/100, colorful.D50)
		return mul(bradfordD50ToD65, x, y, z)
	case SpaceLch:
		l, a, b := colorful.HclToLab(v[2], v[1]/100, v[0]/100)
		x, y, z = colorful.LabToXyzWhiteRef(l, a, b, colorful.D50)
		return mul(bradfordD50ToD65, x, y, z)
	case SpaceLinearSRGB:
		return colorful.LinearRgbToXyz(v[0], v[1], v[2])
	case SpaceDisplayP3:
		// P3 shares the sRGB transfer curve
		lr, lg, lb := colorful.Color{R: v[0], G: v[1], B: v[2]}.LinearRgb()
		return mul(linearP3ToXYZ, lr, lg, lb)
	case SpaceXYZD50:
		return mul(bradfordD50ToD65, v[0], v[1], v[2])
	}
	return v[0], v[1], v[2]
}

func mul(m [3][3]float64, a, b, c float64) (x, y, z float64) {
	x = m[0][0]*a + m[0][1]*b + m[0][2]*c
	y = m[1][0]*a + m[1][1]*b + m[1][2]*c
	z = m[2][0]*a + m[2][1]*b + m[2][2]*c
	return
}
