package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Rankdata rank-transforms a, assigning tied values the average of
// the 1-based ranks they span
func Rankdata(a []float64) []float64 {
	n := len(a)
	ivec := make([]int, n)
	for i := range ivec {
		ivec[i] = i
	}
	sort.SliceStable(ivec, func(i, j int) bool { return a[ivec[i]] < a[ivec[j]] })
	ranks := make([]float64, n)
	var (
		sumranks float64
		dupcount int
	)
	for i := 0; i < n; i++ {
		sumranks += float64(i)
		dupcount++
		if i == n-1 || a[ivec[i]] != a[ivec[i+1]] {
			averank := sumranks/float64(dupcount) + 1
			for j := i - dupcount + 1; j <= i; j++ {
				ranks[ivec[j]] = averank
			}
			sumranks = 0
			dupcount = 0
		}
	}
	return ranks
}

// Pearson computes the sample correlation coefficient of A and B.
// Mismatched lengths are reported and the series truncated to the
// shorter one; a zero-variance series is reported and yields 0.0.
func Pearson(A, B []float64) float64 {
	if len(A) != len(B) {
		Warn("Pearson series are not of equal length!")
		if len(A) > len(B) {
			A = A[:len(B)]
		} else {
			B = B[:len(A)]
		}
	}
	if len(A) < 2 {
		Warn("Pearson needs at least two points!")
		return 0.0
	}
	if stat.Variance(A, nil) == 0 || stat.Variance(B, nil) == 0 {
		Warn("zero variance in Pearson correlation")
		return 0.0
	}
	return stat.Correlation(A, B, nil)
}

// Spearman computes the rank correlation coefficient of A and B
func Spearman(A, B []float64) float64 {
	return Pearson(Rankdata(A), Rankdata(B))
}

// StdDev computes the sample standard deviation of data
func StdDev(data []float64) float64 {
	return stat.StdDev(data, nil)
}

// WeightedStdDev computes the standard deviation of data under the
// given weights. Missing or short weights fall back to uniform ones;
// the normalization counts only the nonzero weights.
func WeightedStdDev(data, weights []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0.0
	}
	if len(weights) < n {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1.0
		}
	} else {
		weights = weights[:n]
	}
	wmean := stat.Mean(data, weights)
	var m int
	for _, w := range weights {
		if w != 0.0 {
			m++
		}
	}
	if m < 2 {
		return 0.0
	}
	var variance float64
	for i := range data {
		variance += weights[i] * (data[i] - wmean) * (data[i] - wmean)
	}
	variance /= float64(m-1) * floats.Sum(weights) / float64(m)
	return math.Sqrt(variance)
}
