package engine

// eps is the floating-point tolerance used throughout the engine so that
// a part exactly equal to a stock (or segment) length isn't rejected by
// rounding noise.
const eps = 1e-6
