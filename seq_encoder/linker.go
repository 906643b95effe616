package seq_encoder

import (
	"fmt"
	"strings"
)

// Strategy selects the linker motif placed between the two encoded names.
type Strategy int

const (
	Flexible Strategy = iota
	Anchor
	Cysteine
)

// DefaultStrategy is used when no strategy is given.
const DefaultStrategy = Anchor

// Linker is the motif and display metadata bound to a Strategy.
type Linker struct {
	Motif       string
	Label       string
	Description string
}

// Strategies lists every strategy in display order.
var Strategies = []Strategy{Flexible, Anchor, Cysteine}

// Linker returns the fixed linker for s. Every Strategy has exactly one.
func (s Strategy) Linker() Linker {
	switch s {
	case Flexible:
		return Linker{
			Motif:       "GGSGGS",
			Label:       "Flexible",
			Description: "Glycine-serine spacer that lets the two halves move freely",
		}
	case Anchor:
		return Linker{
			Motif:       "WPHWP",
			Label:       "Anchor",
			Description: "Bulky aromatic and proline hinge that holds the halves close",
		}
	case Cysteine:
		return Linker{
			Motif:       "GGSGGS",
			Label:       "Cysteine Bond",
			Description: "Flexible spacer flanked by terminal cysteines that can form a disulfide loop",
		}
	}
	panic(fmt.Sprintf("seq_encoder: unknown strategy %d", int(s)))
}

func (s Strategy) String() string {
	switch s {
	case Flexible:
		return "flexible"
	case Anchor:
		return "anchor"
	case Cysteine:
		return "cysteine"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name to its Strategy. Matching ignores case
// and surrounding space; an empty name selects DefaultStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultStrategy, nil
	case "flexible":
		return Flexible, nil
	case "anchor":
		return Anchor, nil
	case "cysteine":
		return Cysteine, nil
	}
	return 0, fmt.Errorf("unknown linker strategy %q (want flexible, anchor or cysteine)", name)
}

// MarshalText lets Strategy appear by name in JSON and YAML.
func (s Strategy) MarshalText() ([]byte, error) {
	switch s {
	case Flexible, Anchor, Cysteine:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown strategy %d", int(s))
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
