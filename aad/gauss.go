package aad

import "gonum.org/v1/gonum/stat/distuv"

// standardNormal backs the module's φ/Φ elementary operations. Prob and
// CDF are pure functions of x and need no random source, so the zero
// value (no Src) is safe to share across goroutines.
var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

func normalDens(x float64) float64 { return standardNormal.Prob(x) }
func normalCdf(x float64) float64  { return standardNormal.CDF(x) }
