// file: internals/helpers/strlist.go
package helper

import "strings"

// SplitCommaList memecah input "A, B, C" menjadi ["A","B","C"].
// Entri kosong dibuang, spasi di tepi dipangkas, urutan & duplikat dipertahankan.
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinCommaList menggabungkan list menjadi string tampilan form ("A, B, C").
func JoinCommaList(items []string) string {
	return strings.Join(items, ", ")
}
