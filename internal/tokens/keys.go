package tokens

import (
	"sort"
	"strconv"
	"strings"
)

// ShadeKeys is the fixed, ordered set of shade keys every palette declares.
var ShadeKeys = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// sizeScale ranks the t-shirt size keys used by fontSize and borderRadius.
var sizeScale = map[string]int{
	"none":    0,
	"xs":      1,
	"sm":      2,
	"DEFAULT": 3,
	"base":    3,
	"md":      4,
	"lg":      5,
	"xl":      6,
	"2xl":     7,
	"3xl":     8,
	"4xl":     9,
	"5xl":     10,
	"6xl":     11,
	"7xl":     12,
	"8xl":     13,
	"9xl":     14,
	"full":    15,
}

// SortedKeys returns the keys of m in scale order: numeric keys ascending,
// then size-scale keys (xs … 9xl), then the rest lexically.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

func keyLess(a, b string) bool {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case rankNumeric:
		na, nb := numericValue(a), numericValue(b)
		if na != nb {
			return na < nb
		}
	case rankScale:
		if sizeScale[a] != sizeScale[b] {
			return sizeScale[a] < sizeScale[b]
		}
	}
	return a < b
}

const (
	rankNumeric = iota
	rankScale
	rankOther
)

// numericValue orders "px" just before "0".
func numericValue(key string) float64 {
	if key == "px" {
		return -1
	}
	n, _ := strconv.ParseFloat(key, 64)
	return n
}

func keyRank(key string) int {
	if key == "px" {
		return rankNumeric
	}
	if _, err := strconv.ParseFloat(key, 64); err == nil {
		return rankNumeric
	}
	if _, ok := sizeScale[key]; ok {
		return rankScale
	}
	return rankOther
}

// SortedStops returns keyframe stops ordered by their first offset.
func SortedStops(kf Keyframes) []string {
	stops := make([]string, 0, len(kf))
	for stop := range kf {
		stops = append(stops, stop)
	}
	sort.SliceStable(stops, func(i, j int) bool {
		oi, oj := firstOffset(stops[i]), firstOffset(stops[j])
		if oi != oj {
			return oi < oj
		}
		return stops[i] < stops[j]
	})
	return stops
}

func firstOffset(stop string) float64 {
	offsets, err := ParseStops(stop)
	if err != nil || len(offsets) == 0 {
		return 101
	}
	return offsets[0]
}

// KebabCase turns a camelCase property name into its CSS spelling.
func KebabCase(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
