package output

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-noise-mixer/internal/sampleconv"
)

// oto plays float32, signed 16-bit and unsigned 8-bit little-endian PCM.
var otoFormats = []sampleconv.Format{
	sampleconv.FormatFloat32,
	sampleconv.FormatInt16,
	sampleconv.FormatUint8,
}

// OtoFormats lists the formats the oto backend accepts.
func OtoFormats() []sampleconv.Format {
	return slices.Clone(otoFormats)
}

// checkOtoFormat rejects formats oto cannot play.
func checkOtoFormat(f sampleconv.Format) error {
	if !slices.Contains(otoFormats, f) {
		return fmt.Errorf("%w: oto cannot play %s", sampleconv.ErrUnsupportedFormat, f)
	}
	return nil
}
