// Package parish holds the canonical table of Jamaica's 14 parishes.
//
// Parish IDs and station-code prefixes are stable identifiers shared with the
// dashboard's map layer; they must never be renumbered.
package parish

import "fmt"

// Parish is one of Jamaica's 14 administrative parishes.
type Parish struct {
	ID     int    // stable 1-14
	Name   string // canonical display name
	Prefix string // 3-letter station-code prefix
}

// All lists the 14 parishes in canonical ID order.
var All = []Parish{
	{1, "Kingston", "KIN"},
	{2, "St. Andrew", "STA"},
	{3, "St. Thomas", "STT"},
	{4, "Portland", "POR"},
	{5, "St. Mary", "STM"},
	{6, "St. Ann", "SAN"},
	{7, "Trelawny", "TRL"},
	{8, "St. James", "STJ"},
	{9, "Hanover", "HAN"},
	{10, "Westmoreland", "WML"},
	{11, "St. Elizabeth", "STE"},
	{12, "Manchester", "MAN"},
	{13, "Clarendon", "CLA"},
	{14, "St. Catherine", "STC"},
}

var (
	byName   = make(map[string]Parish, len(All))
	byPrefix = make(map[string]Parish, len(All))
)

func init() {
	for _, p := range All {
		byName[p.Name] = p
		byPrefix[p.Prefix] = p
	}
}

// ByName looks up a parish by its canonical name.
func ByName(name string) (Parish, bool) {
	p, ok := byName[name]
	return p, ok
}

// ByPrefix looks up a parish by its station-code prefix.
func ByPrefix(prefix string) (Parish, bool) {
	p, ok := byPrefix[prefix]
	return p, ok
}

// FormatCode builds a station code from a parish prefix and a 1-based
// sequence number, zero-padded so lexicographic order equals numeric order.
func FormatCode(prefix string, seq int) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}
