package dataset

import (
	"github.com/katalvlaran/perceptron/vector"
)

// Bias is the constant component appended to every feature vector.
const Bias = 1.0

// Class labels a sample as belonging to the first or the second input class.
type Class int

const (
	// Class1 samples are stored unmodified.
	Class1 Class = 1
	// Class2 samples are stored negated.
	Class2 Class = -1
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Class1:
		return "class 1"
	case Class2:
		return "class 2"
	default:
		return "unknown class"
	}
}

// SampleSet is an ordered collection of augmented samples: class 1 first,
// then class 2, each in input order.
type SampleSet struct {
	samples []vector.Vector // augmented, class 2 negated
	points  [][]float64     // original coordinates, copied
	labels  []Class
	n1, n2  int
}

// Build constructs the augmented sample set from two classes of points.
//
// Every point in both classes must have the same number of coordinates d ≥ 1;
// the resulting samples have d+1 components. Input slices are copied.
//
// Errors (checked in this order, first failure wins):
//   - ErrEmptyFeature, ErrInconsistentDimension, ErrNonFinite per point,
//     wrapped with the class and index of the offending point.
//   - ErrEmptySampleSet if both classes are empty.
//
// Complexity: O(n·d) time and memory.
func Build(class1, class2 [][]float64) (*SampleSet, error) {
	total := len(class1) + len(class2)
	s := &SampleSet{
		samples: make([]vector.Vector, 0, total),
		points:  make([][]float64, 0, total),
		labels:  make([]Class, 0, total),
	}

	dim := -1
	add := func(class Class, idx int, p []float64) error {
		if len(p) == 0 {
			return pointErrorf(opBuild, class, idx, ErrEmptyFeature)
		}
		if dim < 0 {
			dim = len(p)
		}
		if len(p) != dim {
			return pointErrorf(opBuild, class, idx, ErrInconsistentDimension)
		}
		if err := vector.ValidateFinite(p); err != nil {
			return pointErrorf(opBuild, class, idx, ErrNonFinite)
		}

		x := vector.Augment(p, Bias)
		if class == Class2 {
			if err := vector.Scale(-1, x); err != nil {
				return pointErrorf(opBuild, class, idx, err)
			}
		}
		s.samples = append(s.samples, x)
		s.points = append(s.points, append([]float64(nil), p...))
		s.labels = append(s.labels, class)

		return nil
	}

	for i, p := range class1 {
		if err := add(Class1, i, p); err != nil {
			return nil, err
		}
	}
	for i, p := range class2 {
		if err := add(Class2, i, p); err != nil {
			return nil, err
		}
	}
	if total == 0 {
		return nil, datasetErrorf(opBuild, ErrEmptySampleSet)
	}
	s.n1, s.n2 = len(class1), len(class2)

	return s, nil
}

// FromAugmented wraps rows that are already augmented and sign-adjusted.
//
// The class of each row is recovered from the sign of its last (bias)
// component: positive means Class1, negative means Class2.
//
// Errors: ErrEmptySampleSet, ErrEmptyFeature (rows shorter than 2),
// ErrInconsistentDimension, ErrNonFinite, ErrBadBias.
func FromAugmented(rows [][]float64) (*SampleSet, error) {
	if len(rows) == 0 {
		return nil, datasetErrorf(opFromAugmented, ErrEmptySampleSet)
	}
	dim := len(rows[0])
	s := &SampleSet{
		samples: make([]vector.Vector, 0, len(rows)),
		points:  make([][]float64, 0, len(rows)),
		labels:  make([]Class, 0, len(rows)),
	}
	for i, r := range rows {
		if len(r) < 2 {
			return nil, rowErrorf(opFromAugmented, i, ErrEmptyFeature)
		}
		if len(r) != dim {
			return nil, rowErrorf(opFromAugmented, i, ErrInconsistentDimension)
		}
		if err := vector.ValidateFinite(r); err != nil {
			return nil, rowErrorf(opFromAugmented, i, ErrNonFinite)
		}

		bias := r[len(r)-1]
		class := Class1
		switch {
		case bias < 0:
			class = Class2
			s.n2++
		case bias > 0:
			s.n1++
		default:
			return nil, rowErrorf(opFromAugmented, i, ErrBadBias)
		}

		x := vector.Vector(r).Clone()
		p := make([]float64, len(r)-1)
		for j := range p {
			p[j] = x[j] * float64(class) / abs(bias)
		}
		s.samples = append(s.samples, x)
		s.points = append(s.points, p)
		s.labels = append(s.labels, class)
	}

	return s, nil
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.samples)
}

// Dim returns the augmented dimensionality d+1.
func (s *SampleSet) Dim() int {
	if s.Len() == 0 {
		return 0
	}
	return len(s.samples[0])
}

// FeatureDim returns the raw feature dimensionality d.
func (s *SampleSet) FeatureDim() int {
	if d := s.Dim(); d > 0 {
		return d - 1
	}
	return 0
}

// At returns the i-th augmented sample without copying.
// Callers must not mutate the returned vector.
func (s *SampleSet) At(i int) vector.Vector { return s.samples[i] }

// Label returns the class of the i-th sample.
func (s *SampleSet) Label(i int) Class { return s.labels[i] }

// Point returns a copy of the original coordinates of the i-th sample.
func (s *SampleSet) Point(i int) []float64 {
	return append([]float64(nil), s.points[i]...)
}

// Counts returns the number of class 1 and class 2 samples.
func (s *SampleSet) Counts() (class1, class2 int) { return s.n1, s.n2 }

// Samples returns deep copies of all augmented samples in order.
func (s *SampleSet) Samples() []vector.Vector {
	out := make([]vector.Vector, len(s.samples))
	for i, x := range s.samples {
		out[i] = x.Clone()
	}

	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
