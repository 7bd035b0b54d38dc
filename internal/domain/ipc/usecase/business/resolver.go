package business

import (
	"sort"
	"strconv"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/consts"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/entities"
)

// sectionIndex and sectionCodes are built once and only read afterwards
var (
	sectionIndex = make(map[string]entities.Section, len(consts.Sections))
	sectionCodes = make([]string, 0, len(consts.Sections))
)

func init() {
	for _, s := range consts.Sections {
		sectionIndex[s.Code] = s
		sectionCodes = append(sectionCodes, s.Code)
	}

	// Section codes are decimal numbers; "38" sorts before "320"
	sort.Slice(sectionCodes, func(i, j int) bool {
		a, _ := strconv.Atoi(sectionCodes[i])
		b, _ := strconv.Atoi(sectionCodes[j])
		return a < b
	})
}

// Resolve returns the search phrase for an exact, case-sensitive section code.
// The caller trims the input.
func Resolve(code string) (string, bool) {
	s, ok := sectionIndex[code]
	return s.Phrase, ok
}

// Codes returns the recognized section codes in ascending numeric order
func Codes() []string {
	codes := make([]string, len(sectionCodes))
	copy(codes, sectionCodes)
	return codes
}
