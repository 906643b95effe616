// Package pdb_parser reads the ATOM records of fixed-column PDB text as
// returned by structure predictors.
//
// Only the fields needed downstream are extracted: coordinates, the
// per-atom confidence stored in the B-factor column, the atom name and the
// residue sequence number. Lines whose coordinates do not parse are skipped
// rather than reported.
package pdb_parser

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"love_fold_go/utils"
)

// AtomRecord is one parsed ATOM line.
type AtomRecord struct {
	X, Y, Z    float64
	Confidence float64 // pLDDT for predicted models
	Name       string
	ResSeq     int
	HasResSeq  bool
	ResName    string
}

// Column ranges, 0-indexed and half-open (PDB columns are 1-indexed).
const (
	colNameStart, colNameEnd       = 12, 16
	colResNameStart, colResNameEnd = 17, 20
	colResSeqStart, colResSeqEnd   = 22, 26
	colXStart, colXEnd             = 30, 38
	colYStart, colYEnd             = 38, 46
	colZStart, colZEnd             = 46, 54
	colConfStart, colConfEnd       = 60, 66
)

// Parse returns the ATOM records of text in input order.
func Parse(text string) []AtomRecord {
	var records []AtomRecord
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := ParseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// ParseReader is Parse over a stream. Gzip input is detected and decoded.
func ParseReader(r io.Reader) ([]AtomRecord, error) {
	reader, err := utils.MaybeGunzip(r)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(reader)
	var records []AtomRecord
	for scanner.Scan() {
		if rec, ok := ParseLine(scanner.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}
	return records, nil
}

// ParseLine parses a single line. ok is false for non-ATOM lines and for ATOM
// lines whose x, y or z is missing or not a finite number. Residue number and
// confidence failures leave those fields zero but keep the record.
func ParseLine(line string) (AtomRecord, bool) {
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, "ATOM") {
		return AtomRecord{}, false
	}

	x, okX := parseCoord(column(line, colXStart, colXEnd))
	y, okY := parseCoord(column(line, colYStart, colYEnd))
	z, okZ := parseCoord(column(line, colZStart, colZEnd))
	if !okX || !okY || !okZ {
		return AtomRecord{}, false
	}

	rec := AtomRecord{
		X:       x,
		Y:       y,
		Z:       z,
		Name:    column(line, colNameStart, colNameEnd),
		ResName: column(line, colResNameStart, colResNameEnd),
	}
	if n, err := strconv.Atoi(column(line, colResSeqStart, colResSeqEnd)); err == nil {
		rec.ResSeq = n
		rec.HasResSeq = true
	}
	if c, err := strconv.ParseFloat(column(line, colConfStart, colConfEnd), 64); err == nil && isFinite(c) {
		rec.Confidence = c
	}
	return rec, true
}

// column returns the trimmed text of line[start:end], clamped to the line.
func column(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

func parseCoord(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
