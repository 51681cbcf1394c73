package color

const (
	hashMultiplier = 173
	hashMask       = 8191 // 13 bits

	// HashPeriod is the number of distinct hue seeds Hash can produce.
	// 34 is deliberately not prime: multiples of the golden-angle step land
	// back near the starting hue only after several periods.
	HashPeriod = 34
)

// Hash maps text to a hue seed in [0, HashPeriod). The result depends only on
// the code points of text, so the same host name or workspace URI yields the
// same seed on every machine and every run. Empty text hashes to 0.
func Hash(text string) int {
	var (
		acc   int
		first = true
	)
	for _, r := range text {
		if first {
			acc = int(r)
			first = false
			continue
		}
		acc = (acc*hashMultiplier + int(r) + ((acc & 0x5555) >> 5)) & hashMask
	}
	return acc % HashPeriod
}
