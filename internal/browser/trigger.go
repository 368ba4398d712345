package browser

// DefaultScrollThreshold is how many rows before the end of the content the
// next batch starts loading.
const DefaultScrollThreshold = 4

// NearBottom reports whether the bottom of the visible window at offset is
// within threshold rows of the end of the content. Content shorter than the
// window always counts as near the bottom.
func NearBottom(offset, viewHeight, contentHeight, threshold int) bool {
	if threshold < 0 {
		threshold = 0
	}
	if contentHeight <= viewHeight {
		return true
	}
	return offset+viewHeight >= contentHeight-threshold
}
