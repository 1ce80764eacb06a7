package markers

import (
	"fmt"
	"strings"

	"github.com/genotools/snpqc/internal/genotype"
)

// APOEStatus determines the APOE epsilon diplotype from rs429358 and
// rs7412. Haplotypes: e2 = T-T, e3 = T-C, e4 = C-C (rs429358-rs7412).
// Returns "Unable to determine" when either marker is missing.
func APOEStatus(idx genotype.Index) string {
	rs429358 := strings.ToUpper(idx.Get("rs429358"))
	rs7412 := strings.ToUpper(idx.Get("rs7412"))

	if rs429358 == "" || rs7412 == "" {
		return "Unable to determine"
	}

	c429 := strings.Count(rs429358, "C")
	t7412 := strings.Count(rs7412, "T")

	switch {
	case c429 == 0 && t7412 == 2:
		return "e2/e2"
	case c429 == 0 && t7412 == 1:
		return "e2/e3"
	case c429 == 0 && t7412 == 0:
		return "e3/e3"
	case c429 == 1 && t7412 == 1:
		return "e2/e4"
	case c429 == 1 && t7412 == 0:
		return "e3/e4"
	case c429 == 2 && t7412 == 0:
		return "e4/e4"
	default:
		return fmt.Sprintf("Complex (%s/%s)", rs429358, rs7412)
	}
}
