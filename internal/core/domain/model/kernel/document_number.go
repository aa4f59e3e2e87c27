package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"logistics/internal/pkg/errs"
)

var documentNumberPattern = regexp.MustCompile(`^([A-Z]{3})-(\d{4})-(\d{5,})$`)

// DocumentNumber is a human readable yearly sequence number such as SHP-2025-00042.
type DocumentNumber struct {
	prefix   string
	year     int
	sequence int64
}

// NewDocumentNumber formats prefix, year and a 1-based sequence. Sequences above
// 99999 widen the numeric part instead of wrapping.
func NewDocumentNumber(prefix string, year int, sequence int64) (DocumentNumber, error) {
	if len(prefix) != 3 {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("prefix", fmt.Errorf("%q must have 3 letters", prefix))
	}
	if year < 1000 || year > 9999 {
		return DocumentNumber{}, errs.NewValueIsOutOfRangeError("year", year, 1000, 9999)
	}
	if sequence < 1 {
		return DocumentNumber{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, "unbounded")
	}
	return DocumentNumber{prefix: prefix, year: year, sequence: sequence}, nil
}

func ParseDocumentNumber(s string) (DocumentNumber, error) {
	m := documentNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("document number", fmt.Errorf("%q has wrong format", s))
	}
	year, _ := strconv.Atoi(m[2])
	seq, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("document number", err)
	}
	return NewDocumentNumber(m[1], year, seq)
}

func (n DocumentNumber) Prefix() string {
	return n.prefix
}

func (n DocumentNumber) Year() int {
	return n.year
}

func (n DocumentNumber) Sequence() int64 {
	return n.sequence
}

func (n DocumentNumber) IsZero() bool {
	return n.sequence == 0
}

func (n DocumentNumber) String() string {
	return fmt.Sprintf("%s-%04d-%05d", n.prefix, n.year, n.sequence)
}
