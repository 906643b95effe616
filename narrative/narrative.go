// Package narrative writes a one-sentence description of a predicted
// structure.
//
// Phrase choice looks random but is a pure function of the sequence: a
// positional character-code sum seeds every pick, so the same structure and
// sequence always read the same way.
package narrative

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"love_fold_go/structure_stats"
)

// Per-axis seed offsets
const (
	shapeOffset      = 7
	sizeOffset       = 11
	uniquenessOffset = 13
	firstConnector   = 17
	secondConnector  = 19
)

// Axis thresholds
const (
	elongatedAspect = 2.5
	compactAspect   = 1.4
	tinyResidues    = 20
	mediumResidues  = 45
	veryUnique      = 60.0
	unique          = 40.0
)

// Seed sums each character code of sequence times its 1-based position.
func Seed(sequence string) int {
	seed := 0
	pos := 0
	for _, r := range sequence {
		pos++
		seed += int(r) * pos
	}
	return seed
}

func pick(pool []string, seed, offset int) string {
	return pool[(seed+offset)%len(pool)]
}

// ShapePool selects the shape pool for an aspect ratio.
func ShapePool(aspect float64) []string {
	switch {
	case aspect > elongatedAspect:
		return shapeElongated
	case aspect < compactAspect:
		return shapeCompact
	default:
		return shapeBalanced
	}
}

// SizePool selects the size pool for a residue count.
func SizePool(residues int) []string {
	switch {
	case residues < tinyResidues:
		return sizeTiny
	case residues < mediumResidues:
		return sizeMedium
	default:
		return sizeLarge
	}
}

// UniquenessPool selects the uniqueness pool for a mean confidence.
func UniquenessPool(meanConfidence float64) []string {
	u := 100 - meanConfidence
	switch {
	case u > veryUnique:
		return uniqueVery
	case u > unique:
		return uniqueNormal
	default:
		return uniqueFamiliar
	}
}

// Describe renders the sentence for stats and the sequence that folded into
// it.
func Describe(stats structure_stats.ProteinStats, sequence string) string {
	seed := Seed(sequence)

	shape := pick(ShapePool(stats.AspectRatio()), seed, shapeOffset)
	size := pick(SizePool(stats.ResidueCount), seed, sizeOffset)
	uniq := pick(UniquenessPool(stats.AverageConfidence), seed, uniquenessOffset)
	c1 := pick(connectors, seed, firstConnector)
	c2 := pick(connectors, seed, secondConnector)

	var sentence string
	switch seed % 4 {
	case 0:
		sentence = fmt.Sprintf("%s, %s %s %s.", size, shape, c1, uniq)
	case 1:
		sentence = fmt.Sprintf("%s: %s %s %s.", shape, size, c1, uniq)
	case 2:
		sentence = fmt.Sprintf("%s %s %s, %s %s.", size, c1, shape, c2, uniq)
	default:
		sentence = fmt.Sprintf("%s: %s, %s %s.", uniq, size, c1, shape)
	}
	return capitalize(sentence)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
