package interpolate

// LagrangeCoefficients returns the Lagrange basis coefficients for
// fractional position r over degree+1 uniformly spaced nodes 0, 1, ...,
// degree. Summing node values weighted by the coefficients evaluates
// the interpolating polynomial at r.
func LagrangeCoefficients(r float64, degree int) []float64 {
	cs := make([]float64, degree+1)
	for j := range cs {
		basis := 1.0
		for k := 0; k <= degree; k++ {
			if k == j {
				continue
			}
			basis *= (r - float64(k)) / float64(j-k)
		}
		cs[j] = basis
	}
	return cs
}
