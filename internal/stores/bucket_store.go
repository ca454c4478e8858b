package stores

import (
	"iter"

	"dataportal-stats/internal/models"

	"github.com/google/btree"
)

const bucketTreeDegree = 8

type monthEntry struct {
	month   int
	metrics models.MetricSet
}

type yearEntry struct {
	year   int
	months *btree.BTreeG[*monthEntry]
}

// BucketStore accumulates metrics per (year, month). Iteration is always in
// ascending (year, month) order regardless of insertion order, and a bucket
// exists only once something has been added to it.
//
// A BucketStore belongs to a single report run and is not safe for concurrent use.
type BucketStore struct {
	years *btree.BTreeG[*yearEntry]
}

func NewBucketStore() *BucketStore {
	return &BucketStore{
		years: btree.NewG(bucketTreeDegree, func(a, b *yearEntry) bool { return a.year < b.year }),
	}
}

// Increment adds amount to metric in the (year, month) bucket, creating the
// year, the month and the metric as needed. Non-positive amounts are ignored.
func (s *BucketStore) Increment(year, month int, metric string, amount int64) {
	if amount <= 0 {
		return
	}

	ye, ok := s.years.Get(&yearEntry{year: year})
	if !ok {
		ye = &yearEntry{
			year:   year,
			months: btree.NewG(bucketTreeDegree, func(a, b *monthEntry) bool { return a.month < b.month }),
		}
		s.years.ReplaceOrInsert(ye)
	}

	me, ok := ye.months.Get(&monthEntry{month: month})
	if !ok {
		me = &monthEntry{month: month, metrics: make(models.MetricSet)}
		ye.months.ReplaceOrInsert(me)
	}

	me.metrics[metric] += amount
}

// Get returns a copy of the (year, month) bucket.
func (s *BucketStore) Get(year, month int) (models.Bucket, bool) {
	ye, ok := s.years.Get(&yearEntry{year: year})
	if !ok {
		return models.Bucket{}, false
	}
	me, ok := ye.months.Get(&monthEntry{month: month})
	if !ok {
		return models.Bucket{}, false
	}
	return models.Bucket{Year: year, Month: month, Metrics: me.metrics.Clone()}, true
}

// Years yields each year with its month buckets, both ascending.
// The sequence can be ranged over any number of times.
func (s *BucketStore) Years() iter.Seq[models.YearBuckets] {
	return func(yield func(models.YearBuckets) bool) {
		s.years.Ascend(func(ye *yearEntry) bool {
			yb := models.YearBuckets{Year: ye.year, Months: make([]models.Bucket, 0, ye.months.Len())}
			ye.months.Ascend(func(me *monthEntry) bool {
				yb.Months = append(yb.Months, models.Bucket{Year: ye.year, Month: me.month, Metrics: me.metrics.Clone()})
				return true
			})
			return yield(yb)
		})
	}
}

// Buckets yields every bucket in ascending (year, month) order.
func (s *BucketStore) Buckets() iter.Seq[models.Bucket] {
	return func(yield func(models.Bucket) bool) {
		for yb := range s.Years() {
			for _, b := range yb.Months {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// Totals sums every metric across all buckets.
func (s *BucketStore) Totals() models.MetricSet {
	totals := make(models.MetricSet)
	s.years.Ascend(func(ye *yearEntry) bool {
		ye.months.Ascend(func(me *monthEntry) bool {
			for metric, v := range me.metrics {
				totals[metric] += v
			}
			return true
		})
		return true
	})
	return totals
}

// Len returns the number of (year, month) buckets.
func (s *BucketStore) Len() int {
	n := 0
	s.years.Ascend(func(ye *yearEntry) bool {
		n += ye.months.Len()
		return true
	})
	return n
}
