package catalog

import "strings"

// PriceBucket is a named price interval. Max is ignored when Unbounded.
type PriceBucket struct {
	Label        string
	Min          float64
	Max          float64
	MinExclusive bool
	MaxExclusive bool
	Unbounded    bool
}

// Contains reports whether price falls inside the bucket.
func (b PriceBucket) Contains(price float64) bool {
	if price < b.Min || (b.MinExclusive && price == b.Min) {
		return false
	}
	if b.Unbounded {
		return true
	}
	if price > b.Max || (b.MaxExclusive && price == b.Max) {
		return false
	}
	return true
}

// The labels read as closed integer ranges, each lower edge exclusive of the
// previous bucket's max so that fractional prices land in exactly one bucket.
// "5000+" starts strictly above 5000.
var priceBuckets = []PriceBucket{
	{Label: "0-299", Min: 0, Max: 300, MaxExclusive: true},
	{Label: "300-1000", Min: 300, Max: 1000},
	{Label: "1001-2000", Min: 1000, Max: 2000, MinExclusive: true},
	{Label: "2001-3000", Min: 2000, Max: 3000, MinExclusive: true},
	{Label: "3001-4000", Min: 3000, Max: 4000, MinExclusive: true},
	{Label: "4001-5000", Min: 4000, Max: 5000, MinExclusive: true},
	{Label: "5000+", Min: 5000, MinExclusive: true, Unbounded: true},
}

// PriceBuckets returns the static bucket table in ascending order.
func PriceBuckets() []PriceBucket {
	out := make([]PriceBucket, len(priceBuckets))
	copy(out, priceBuckets)
	return out
}

// PriceBucketLabels returns the bucket labels in ascending order.
func PriceBucketLabels() []string {
	labels := make([]string, len(priceBuckets))
	for i, b := range priceBuckets {
		labels[i] = b.Label
	}
	return labels
}

// LookupBucket finds a bucket by label. A bare "5000" is accepted for
// "5000+" because an unescaped '+' in a query string decodes to a space.
func LookupBucket(label string) (PriceBucket, bool) {
	label = strings.ReplaceAll(strings.TrimSpace(label), " ", "")
	for _, b := range priceBuckets {
		if b.Label == label || (b.Unbounded && b.Label == label+"+") {
			return b, true
		}
	}
	return PriceBucket{}, false
}

// BucketFor returns the bucket containing price. Negative prices have none.
func BucketFor(price float64) (PriceBucket, bool) {
	for _, b := range priceBuckets {
		if b.Contains(price) {
			return b, true
		}
	}
	return PriceBucket{}, false
}
