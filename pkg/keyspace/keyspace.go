// Package keyspace computes attack keyspaces and plans the slices handed
// out to agents. All functions are pure; resource line counts are passed
// in by the caller.
package keyspace

import (
	"errors"
	"fmt"
)

// ErrUnknownLineCount is returned when a referenced resource has no line
// count yet. Attacks in that state are not dispatchable.
var ErrUnknownLineCount = errors.New("keyspace: resource line count unknown")

// DefaultProbeKeyspace is dispatched when no usable benchmark speed
// exists, sized to finish quickly on anything modern.
const DefaultProbeKeyspace int64 = 100_000_000

// Charsets holds an attack's custom charsets 1..4. Empty entries are
// unset; referencing an unset charset is an error.
type Charsets [4]string

// builtinSizes maps hashcat's built-in charset markers to their sizes.
var builtinSizes = map[rune]int64{
	'l': 26,  // abcdefghijklmnopqrstuvwxyz
	'u': 26,  // ABCDEFGHIJKLMNOPQRSTUVWXYZ
	'd': 10,  // 0123456789
	's': 33,  // space + printable specials
	'a': 95,  // ?l?u?d?s
	'b': 256, // 0x00 - 0xff
	'h': 16,  // 0123456789abcdef
	'H': 16,  // 0123456789ABCDEF
}

// Params carries everything the planner needs to size an attack.
// Line counts are nil when the resource has not been counted yet.
type Params struct {
	Mode           string
	Mask           string
	CustomCharsets Charsets
	IncrementMode  bool
	IncrementMin   int
	IncrementMax   int
	WordListCount  *int64
	RuleListCount  *int64
	MaskListCount  *int64
}

// Phase is one independently sliced region of an attack's keyspace.
// Non-increment attacks have exactly one phase. For increment attacks
// there is one phase per mask prefix length; a slice never spans two.
type Phase struct {
	Length   int
	Keyspace int64
}

// Compute returns the attack's total keyspace.
func Compute(p Params) (int64, error) {
	phases, err := PhasesFor(p)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, ph := range phases {
		total += ph.Keyspace
	}
	return total, nil
}

// PhasesFor returns the attack's phases in dispatch order.
func PhasesFor(p Params) ([]Phase, error) {
	switch p.Mode {
	case "dictionary":
		total, err := dictionaryKeyspace(p)
		if err != nil {
			return nil, err
		}
		return []Phase{{Keyspace: total}}, nil

	case "mask":
		if p.MaskListCount != nil || p.Mask == "" {
			total, err := maskListKeyspace(p)
			if err != nil {
				return nil, err
			}
			return []Phase{{Keyspace: total}}, nil
		}
		if p.IncrementMode {
			return incrementPhases(p.Mask, p.CustomCharsets, p.IncrementMin, p.IncrementMax)
		}
		total, err := MaskKeyspace(p.Mask, p.CustomCharsets)
		if err != nil {
			return nil, err
		}
		return []Phase{{Length: maskLength(p.Mask), Keyspace: total}}, nil

	case "hybrid_dictionary", "hybrid_mask":
		words, err := requireCount(p.WordListCount)
		if err != nil {
			return nil, err
		}
		maskTotal, err := MaskKeyspace(p.Mask, p.CustomCharsets)
		if err != nil {
			return nil, err
		}
		rules := int64(1)
		if p.RuleListCount != nil {
			if *p.RuleListCount < 0 {
				return nil, ErrUnknownLineCount
			}
			rules = max(*p.RuleListCount, 1)
		}
		return []Phase{{Keyspace: words * maskTotal * rules}}, nil

	default:
		return nil, fmt.Errorf("keyspace: unsupported attack mode %q", p.Mode)
	}
}

func dictionaryKeyspace(p Params) (int64, error) {
	words, err := requireCount(p.WordListCount)
	if err != nil {
		return 0, err
	}
	rules := int64(1)
	if p.RuleListCount != nil {
		rules = max(*p.RuleListCount, 1)
	}
	return words * rules, nil
}

// maskListKeyspace sizes an attack driven by a .hcmask file. The server
// never reads those files, so each line is estimated by the attack's
// mask template when one is set, and counts as a single candidate group
// otherwise.
func maskListKeyspace(p Params) (int64, error) {
	lines, err := requireCount(p.MaskListCount)
	if err != nil {
		return 0, err
	}
	perLine := int64(1)
	if p.Mask != "" {
		perLine, err = MaskKeyspace(p.Mask, p.CustomCharsets)
		if err != nil {
			return 0, err
		}
	}
	return lines * perLine, nil
}

// MaskKeyspace returns the product of per-position charset sizes for a
// hashcat mask. "??" escapes a literal question mark.
func MaskKeyspace(mask string, charsets Charsets) (int64, error) {
	sizes, err := positionSizes(mask, charsets)
	if err != nil {
		return 0, err
	}
	if len(sizes) == 0 {
		return 0, errors.New("keyspace: empty mask")
	}
	total := int64(1)
	for _, s := range sizes {
		total *= s
	}
	return total, nil
}

// incrementPhases builds one phase per mask prefix length in
// [minLen, maxLen], clamped to the mask's position count. Hashcat
// defaults the minimum to 1 when unset.
func incrementPhases(mask string, charsets Charsets, minLen, maxLen int) ([]Phase, error) {
	sizes, err := positionSizes(mask, charsets)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, errors.New("keyspace: empty mask")
	}
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < 1 || maxLen > len(sizes) {
		maxLen = len(sizes)
	}
	if minLen > maxLen {
		return nil, fmt.Errorf("keyspace: increment minimum %d exceeds maximum %d", minLen, maxLen)
	}

	phases := make([]Phase, 0, maxLen-minLen+1)
	product := int64(1)
	for i := 0; i < maxLen; i++ {
		product *= sizes[i]
		length := i + 1
		if length >= minLen {
			phases = append(phases, Phase{Length: length, Keyspace: product})
		}
	}
	return phases, nil
}

// positionSizes parses a mask into one charset size per position.
func positionSizes(mask string, charsets Charsets) ([]int64, error) {
	var sizes []int64
	runes := []rune(mask)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '?' {
			sizes = append(sizes, 1)
			continue
		}
		if i+1 >= len(runes) {
			return nil, errors.New("keyspace: mask ends with a dangling '?'")
		}
		i++
		size, err := markerSize(runes[i], charsets, 0)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// markerSize resolves a single ?X marker. Custom charsets may reference
// built-in markers and each other; depth bounds the nesting.
func markerSize(marker rune, charsets Charsets, depth int) (int64, error) {
	if marker == '?' {
		return 1, nil
	}
	if size, ok := builtinSizes[marker]; ok {
		return size, nil
	}
	if marker >= '1' && marker <= '4' {
		if depth >= len(charsets) {
			return 0, fmt.Errorf("keyspace: custom charset ?%c nests too deeply", marker)
		}
		cs := charsets[marker-'1']
		if cs == "" {
			return 0, fmt.Errorf("keyspace: mask references unset custom charset ?%c", marker)
		}
		return charsetSize(cs, charsets, depth+1)
	}
	return 0, fmt.Errorf("keyspace: unknown mask marker ?%c", marker)
}

// charsetSize expands a custom charset definition into its alphabet size.
func charsetSize(cs string, charsets Charsets, depth int) (int64, error) {
	var total int64
	runes := []rune(cs)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '?' {
			total++
			continue
		}
		if i+1 >= len(runes) {
			return 0, errors.New("keyspace: charset ends with a dangling '?'")
		}
		i++
		size, err := markerSize(runes[i], charsets, depth)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

func maskLength(mask string) int {
	n := 0
	runes := []rune(mask)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '?' && i+1 < len(runes) {
			i++
		}
		n++
	}
	return n
}

func requireCount(count *int64) (int64, error) {
	if count == nil || *count < 0 {
		return 0, ErrUnknownLineCount
	}
	return *count, nil
}
