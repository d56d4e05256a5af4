package colour

import (
	"fmt"
	"math/rand/v2"
)

// maxRandomColour is exclusive, so #ffffff itself is never produced.
const maxRandomColour = 0xffffff

// RandomHex returns a uniformly random hex colour in [#000000, #fffffe].
// A nil r uses the global source.
func RandomHex(r *rand.Rand) string {
	var v int
	if r == nil {
		v = rand.IntN(maxRandomColour)
	} else {
		v = r.IntN(maxRandomColour)
	}
	return fmt.Sprintf("#%06x", v)
}
