package continuous

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/colour-science/colour-go/interpolate"
)

// MultiSignals is a vector-valued extension of Signal: one shared
// domain and an ordered set of labelled single-channel signals, all
// synchronized to that domain.
type MultiSignals struct {
	domain  []float64
	labels  []string
	signals map[string]*Signal
}

// NewMultiSignals creates labelled signals from a sample matrix whose
// rows are domain samples and whose columns are channels. A nil domain
// defaults to the row index; nil labels default to the column index.
func NewMultiSignals(matrix [][]float64, domain []float64, labels []string) (*MultiSignals, error) {
	rows := len(matrix)
	cols := 0
	if rows > 0 {
		cols = len(matrix[0])
	}
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf(
				"continuous: row %d has %d columns, expected %d",
				i, len(row), cols,
			)
		}
	}
	if domain == nil {
		domain = make([]float64, rows)
		for i := range domain {
			domain[i] = float64(i)
		}
	}
	if len(domain) != rows {
		return nil, fmt.Errorf(
			"continuous: len(domain) = %d but matrix has %d rows",
			len(domain), rows,
		)
	}

	labels, err := normalizeLabels(labels, cols)
	if err != nil {
		return nil, err
	}

	ms := &MultiSignals{signals: map[string]*Signal{}}
	for j, label := range labels {
		col := make([]float64, rows)
		for i := range matrix {
			col[i] = matrix[i][j]
		}
		sig, err := NewSignal(col, domain)
		if err != nil {
			return nil, err
		}
		ms.labels = append(ms.labels, label)
		ms.signals[label] = sig
	}
	if cols > 0 {
		ms.domain = ms.signals[labels[0]].Domain()
	} else {
		ms.domain = dup(domain)
	}
	return ms, nil
}

// NewMultiSignalsFromMap creates labelled signals from a mapping of
// domain point to channel vector. All vectors must have equal length.
func NewMultiSignalsFromMap(data map[float64][]float64, labels []string) (*MultiSignals, error) {
	domain := make([]float64, 0, len(data))
	for x := range data {
		domain = append(domain, x)
	}
	sort.Float64s(domain)

	matrix := make([][]float64, len(domain))
	for i, x := range domain {
		matrix[i] = data[x]
	}
	return NewMultiSignals(matrix, domain, labels)
}

// NewMultiSignalsFromSignals creates labelled signals from existing
// single-channel signals. Mismatched domains are reconciled by taking
// the union of all sample points and re-evaluating every signal there,
// so samples outside a signal's envelope follow its extrapolation
// policy.
func NewMultiSignalsFromSignals(signals []*Signal, labels []string) (*MultiSignals, error) {
	labels, err := normalizeLabels(labels, len(signals))
	if err != nil {
		return nil, err
	}

	union := domainUnion(signals)
	ms := &MultiSignals{domain: union, signals: map[string]*Signal{}}
	for i, src := range signals {
		var sig *Signal
		if float64sEqual(src.domain, union) {
			sig = src.Clone()
		} else {
			sig, err = NewSignal(src.EvalAll(union), union)
			if err != nil {
				return nil, err
			}
			sig.method, sig.opts = src.method, src.opts
			sig.exMethod, sig.left, sig.right = src.exMethod, src.left, src.right
			if err := sig.rebuild(); err != nil {
				return nil, err
			}
		}
		ms.labels = append(ms.labels, labels[i])
		ms.signals[labels[i]] = sig
	}
	return ms, nil
}

// normalizeLabels fills in default labels and disambiguates duplicates
// with a " - " suffix counter.
func normalizeLabels(labels []string, n int) ([]string, error) {
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf(
			"continuous: %d labels given for %d channels", len(labels), n,
		)
	}

	seen := map[string]int{}
	out := make([]string, n)
	for i, label := range labels {
		count := seen[label]
		seen[label]++
		if count == 0 {
			out[i] = label
			continue
		}
		out[i] = label + " - " + strconv.Itoa(count)
	}
	return out, nil
}

// domainUnion returns the sorted union of the domains of all signals.
func domainUnion(signals []*Signal) []float64 {
	var union []float64
	for _, s := range signals {
		union = append(union, s.domain...)
	}
	sort.Float64s(union)

	dedup := union[:0]
	for _, x := range union {
		if len(dedup) == 0 || dedup[len(dedup)-1] != x {
			dedup = append(dedup, x)
		}
	}
	return dedup
}

// Labels returns the channel labels in column order.
func (ms *MultiSignals) Labels() []string {
	out := make([]string, len(ms.labels))
	copy(out, ms.labels)
	return out
}

// Domain returns a copy of the shared domain.
func (ms *MultiSignals) Domain() []float64 { return dup(ms.domain) }

// Len returns the number of domain samples.
func (ms *MultiSignals) Len() int { return len(ms.domain) }

// NumSignals returns the number of channels.
func (ms *MultiSignals) NumSignals() int { return len(ms.labels) }

// SignalOf returns the channel with the given label.
func (ms *MultiSignals) SignalOf(label string) (*Signal, bool) {
	s, ok := ms.signals[label]
	return s, ok
}

// Matrix returns the range values as rows of channel vectors.
func (ms *MultiSignals) Matrix() [][]float64 {
	out := make([][]float64, len(ms.domain))
	for i := range out {
		row := make([]float64, len(ms.labels))
		for j, label := range ms.labels {
			row[j] = ms.signals[label].rng[i]
		}
		out[i] = row
	}
	return out
}

// Eval evaluates every channel at x.
func (ms *MultiSignals) Eval(x float64) []float64 {
	out := make([]float64, len(ms.labels))
	for j, label := range ms.labels {
		out[j] = ms.signals[label].Eval(x)
	}
	return out
}

// EvalAll evaluates every channel at all the given x values, returning
// rows of channel vectors.
func (ms *MultiSignals) EvalAll(xs []float64) [][]float64 {
	out := make([][]float64, len(xs))
	for i, x := range xs {
		out[i] = ms.Eval(x)
	}
	return out
}

// SetDomain replaces the shared domain and resynchronizes every
// channel to it.
func (ms *MultiSignals) SetDomain(domain []float64) error {
	for _, label := range ms.labels {
		if err := ms.signals[label].SetDomain(domain); err != nil {
			return err
		}
	}
	if len(ms.labels) > 0 {
		ms.domain = ms.signals[ms.labels[0]].Domain()
	} else {
		ms.domain = dup(domain)
	}
	return nil
}

// Set assigns the channel vector at domain point x, inserting a new
// sample row if x is not already stored. When any channel rejects the
// sample, the channels already updated are restored so they keep
// sharing one domain.
func (ms *MultiSignals) Set(x float64, vals []float64) error {
	if len(vals) != len(ms.labels) {
		return fmt.Errorf(
			"continuous: %d values given for %d channels",
			len(vals), len(ms.labels),
		)
	}

	backups := make([]*Signal, 0, len(ms.labels))
	for j, label := range ms.labels {
		backup := ms.signals[label].Clone()
		if err := ms.signals[label].Set(x, vals[j]); err != nil {
			for k, lab := range ms.labels[:j] {
				ms.signals[lab] = backups[k]
			}
			return err
		}
		backups = append(backups, backup)
	}

	if len(ms.labels) > 0 {
		ms.domain = ms.signals[ms.labels[0]].Domain()
	}
	return nil
}

// SetIndex assigns the channel vector at sample index i.
func (ms *MultiSignals) SetIndex(i int, vals []float64) error {
	if len(vals) != len(ms.labels) {
		return fmt.Errorf(
			"continuous: %d values given for %d channels",
			len(vals), len(ms.labels),
		)
	}
	for j, label := range ms.labels {
		if err := ms.signals[label].SetIndex(i, vals[j]); err != nil {
			return err
		}
	}
	return nil
}

// DomainDistance returns the fractional position of x between its two
// bracketing shared-domain samples.
func (ms *MultiSignals) DomainDistance(x float64) float64 {
	if len(ms.labels) == 0 {
		return math.NaN()
	}
	return ms.signals[ms.labels[0]].DomainDistance(x)
}

// IsUniform reports whether the shared domain is equally spaced.
func (ms *MultiSignals) IsUniform() bool {
	if len(ms.labels) == 0 {
		return true
	}
	return ms.signals[ms.labels[0]].IsUniform()
}

// FillNaN replaces NaN values in every channel.
func (ms *MultiSignals) FillNaN(method FillMethod, def float64) error {
	for _, label := range ms.labels {
		if err := ms.signals[label].FillNaN(method, def); err != nil {
			return err
		}
	}
	return nil
}

// SetInterpolator selects the interpolation method for every channel.
func (ms *MultiSignals) SetInterpolator(m interpolate.Method, opts *interpolate.Options) error {
	for _, label := range ms.labels {
		if err := ms.signals[label].SetInterpolator(m, opts); err != nil {
			return err
		}
	}
	return nil
}

// SetExtrapolator selects the extrapolation method for every channel.
func (ms *MultiSignals) SetExtrapolator(m interpolate.ExtrapMethod, left, right float64) error {
	for _, label := range ms.labels {
		if err := ms.signals[label].SetExtrapolator(m, left, right); err != nil {
			return err
		}
	}
	return nil
}

// ApplyScalar applies op between every channel value and k.
func (ms *MultiSignals) ApplyScalar(op Op, k float64, inPlace bool) (*MultiSignals, error) {
	target := ms
	if !inPlace {
		target = ms.Clone()
	}
	for _, label := range target.labels {
		if _, err := target.signals[label].ApplyScalar(op, k, true); err != nil {
			return nil, err
		}
	}
	return target, nil
}

// ApplyMulti applies op channel by channel between two MultiSignals
// with identical labels and domains.
func (ms *MultiSignals) ApplyMulti(op Op, other *MultiSignals, inPlace bool) (*MultiSignals, error) {
	if len(ms.labels) != len(other.labels) {
		return nil, fmt.Errorf(
			"continuous: operand has %d channels, expected %d",
			len(other.labels), len(ms.labels),
		)
	}
	target := ms
	if !inPlace {
		target = ms.Clone()
	}
	for i, label := range target.labels {
		otherSig := other.signals[other.labels[i]]
		if _, err := target.signals[label].ApplySignal(op, otherSig, true); err != nil {
			return nil, err
		}
	}
	return target, nil
}

// Equal reports whether two MultiSignals hold the same labels in the
// same order with equal channels.
func (ms *MultiSignals) Equal(other *MultiSignals) bool {
	if len(ms.labels) != len(other.labels) {
		return false
	}
	for i, label := range ms.labels {
		if label != other.labels[i] {
			return false
		}
		if !ms.signals[label].Equal(other.signals[label]) {
			return false
		}
	}
	return float64sEqual(ms.domain, other.domain)
}

// Clone returns a deep copy.
func (ms *MultiSignals) Clone() *MultiSignals {
	out := &MultiSignals{
		domain:  dup(ms.domain),
		labels:  make([]string, len(ms.labels)),
		signals: map[string]*Signal{},
	}
	copy(out.labels, ms.labels)
	for _, label := range ms.labels {
		out.signals[label] = ms.signals[label].Clone()
	}
	return out
}

func (ms *MultiSignals) String() string {
	return fmt.Sprintf(
		"MultiSignals(%d samples, %d channels %v)",
		len(ms.domain), len(ms.labels), ms.labels,
	)
}
