package ports

// GaussianSource provides normally distributed samples for data generators.
//
// The interactive demo path uses an unseeded source, so runs are explicitly
// not reproducible across reloads. Deterministic consumers (testkit, tests)
// obtain a seeded stream instead.
type GaussianSource interface {
	// Sample draws one value from N(mean, stdDev²)
	Sample(mean, stdDev float64) float64
}

// SeededGaussianFactory creates deterministic Gaussian streams for named
// operations, so demo datasets and tests produce identical draws per seed.
type SeededGaussianFactory interface {
	Stream(seed int64) GaussianSource
}
