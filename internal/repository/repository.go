// Package repository implements one repository per JSON-backed collection.
// Every repository serializes its read-modify-write cycle behind its own
// mutex, which is what makes "last write wins" safe inside one process:
// a collection only ever has one writer at a time.
package repository

// appendUnique appends each id that is not already present. Order of the
// existing entries is preserved.
func appendUnique(dst []string, ids ...string) []string {
	for _, id := range ids {
		seen := false
		for _, existing := range dst {
			if existing == id {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, id)
		}
	}
	return dst
}
