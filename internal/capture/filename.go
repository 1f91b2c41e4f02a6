package capture

import (
	"fmt"
	"time"
)

// timestampLayout formats the capture time to second precision.
const timestampLayout = "20060102_150405"

// Filename builds the deterministic image filename for a capture attempt:
// aerial_<YYYYMMDD_HHMMSS>_T<5-digit-sequence>.jpg. The sequence suffix
// keeps names unique when multiple triggers land within the same second.
func Filename(t time.Time, seq uint64) string {
	return fmt.Sprintf("aerial_%s_T%05d.jpg", t.Format(timestampLayout), seq)
}
