package geom

import "math"

// Polynomial is a fixed-degree, single-variable polynomial over float32.
// Coefficients are stored highest-power-first: coeffs[0] is the
// coefficient of t^(N-1), coeffs[N-1] is the constant term. Degree is
// carried as a runtime field (len(coeffs)-1) rather than a type
// parameter; Go has no numeric generics to encode it at compile time,
// so each coefficient access costs one bounds check instead.
type Polynomial struct {
	coeffs []float32
}

// NewPolynomial builds a polynomial from highest-power-first coefficients.
func NewPolynomial(coeffs ...float32) Polynomial {
	c := make([]float32, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}
}

// Degree returns N-1 for an N-coefficient polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Value evaluates the polynomial at t via Horner's method.
func (p Polynomial) Value(t float32) float32 {
	acc := p.coeffs[0]
	for i := 1; i < len(p.coeffs); i++ {
		acc = acc*t + p.coeffs[i]
	}
	return acc
}

// Derivative returns a polynomial one degree lower.
func (p Polynomial) Derivative() Polynomial {
	n := len(p.coeffs)
	if n <= 1 {
		return NewPolynomial(0)
	}
	d := make([]float32, n-1)
	for i := 0; i < n-1; i++ {
		d[i] = p.coeffs[i] * float32(n-1-i)
	}
	return Polynomial{coeffs: d}
}

// Add returns the element-wise sum of two same-degree polynomials.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := make([]float32, len(p.coeffs))
	for i := range out {
		out[i] = p.coeffs[i] + q.coeffs[i]
	}
	return Polynomial{coeffs: out}
}

// Sub returns the element-wise difference of two same-degree polynomials.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	out := make([]float32, len(p.coeffs))
	for i := range out {
		out[i] = p.coeffs[i] - q.coeffs[i]
	}
	return Polynomial{coeffs: out}
}

// Mul multiplies two polynomials via coefficient convolution, producing
// degree N+M-2 (i.e. N+M-1 coefficients).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	n, m := len(p.coeffs), len(q.coeffs)
	out := make([]float32, n+m-1)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out[i+j] += p.coeffs[i] * q.coeffs[j]
		}
	}
	return Polynomial{coeffs: out}
}

// Square is self-multiplication.
func (p Polynomial) Square() Polynomial { return p.Mul(p) }

// LinearRoot returns -b/a for a degree-1 polynomial [a, b].
func (p Polynomial) LinearRoot() float32 {
	return -p.coeffs[1] / p.coeffs[0]
}

// QuadraticRoots returns both roots of a degree-2 polynomial [a, b, c].
// When the discriminant is negative both results are NaN; callers treat
// NaN as out of range.
func (p Polynomial) QuadraticRoots() (float32, float32) {
	a, b, c := p.coeffs[0], p.coeffs[1], p.coeffs[2]
	disc := b*b - 4*a*c
	sq := sqrt32(disc)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a)
}

// NewtonRefine runs k iterations of Newton's method starting at guess,
// using this polynomial as P and its derivative as P'. No convergence
// check and no safeguard against P'(g)=0: pathological inputs produce
// non-finite results which callers reject via range clamping.
func (p Polynomial) NewtonRefine(guess float32, iterations int) float32 {
	dp := p.Derivative()
	g := guess
	for i := 0; i < iterations; i++ {
		g -= p.Value(g) / dp.Value(g)
	}
	return g
}

func sqrt32(x float32) float32 {
	if x < 0 {
		return float32(math.NaN())
	}
	return float32(math.Sqrt(float64(x)))
}
