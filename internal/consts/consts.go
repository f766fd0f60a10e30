package consts

const (
	TempLookupMin = 300.0 // Property lookup clamp floor (K)
	TempLookupMax = 700.0 // Property lookup clamp ceiling (K)

	ConvergenceTol = 0.01 // Max temperature change between iterates (K)

	ClipLow  = 0.95 // Field clip factor below min(Tc, Th)
	ClipHigh = 1.1  // Field clip factor above max(Tc, Th)

	// A/cm2 -> A/m2. The temperature solve and the efficiency
	// calculation use different factors. Deliberate, see DESIGN.md.
	CurrentScaleSolver     = 100.0
	CurrentScaleEfficiency = 10000.0

	CarnotCapFactor = 0.9 // Efficiency cap relative to the Carnot limit

	ZTCurveStep = 20.0 // Sampling step for figure-of-merit curves (K)

	FallbackNodes = 20 // Ramp length substituted for a missing field

	FallbackConductivity = 2.0 // W/(m*K), used when a measured ZT <= 0
)
