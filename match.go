// SPDX-License-Identifier: MIT

package wad

// searchLookback bounds how far back the finder will look for a candidate
// match; it is the bigger-match family's lookback bound, the widest window
// any packet family can encode. Shorter matches are downgraded to the
// little/big-match encodings at emit time, not at search time.
const searchLookback = biggerMatchMaxLookback

// findMatch scans for the best match starting within [p, p+maxLiteralSize)
// against already-seen bytes in src[:e] (the "dest" side of the search is
// src itself here: the finder always operates on the one source slice,
// since source bytes already scanned are also the bytes the destination
// will eventually hold verbatim or via copy).
//
// It returns literalSize raw bytes to emit first, then — if matchSize > 0
// — a match of matchSize bytes starting at the absolute source offset
// matchOffset. If no match is found, matchSize is 0 and literalSize is
// min(maxLiteral, e-p).
//
// endOfBuffer must be true once p is close enough to e that reading two
// bytes ahead of a candidate could run past e; away from the tail the
// finder uses a cheap 16-bit prefix compare before extending byte by byte.
func findMatch(src []byte, p, e int, endOfBuffer bool) (literalSize, matchOffset, matchSize int) {
	maxLiteralSize := maxLiteral
	if budget := e - p; budget < maxLiteralSize {
		maxLiteralSize = budget
	}

	for i := 0; i < maxLiteralSize; i++ {
		cur := p + i
		if cur+minMatch > e {
			break
		}

		windowStart := cur - searchLookback
		if windowStart < 0 {
			windowStart = 0
		}

		// Scan nearest-first so that, with strict >, the shortest lookback
		// wins among candidates of equal length.
		bestLen, bestPos := 0, 0
		for j := cur - 1; j >= windowStart; j-- {
			if !endOfBuffer {
				if src[j] != src[cur] || src[j+1] != src[cur+1] {
					continue
				}
			} else if src[j] != src[cur] {
				continue
			}

			length := matchLength(src, j, cur, e)
			if length > bestLen {
				bestLen, bestPos = length, j
			}
		}

		if bestLen >= minMatch {
			return i, bestPos, bestLen
		}
	}

	return maxLiteralSize, 0, 0
}

// matchLength returns how many bytes src[j:] and src[cur:] share, starting
// from offset 0 (both already known to match there), capped at encoderCap
// and at the available bytes before e.
func matchLength(src []byte, j, cur, e int) int {
	limit := e - cur
	if limit > encoderCap {
		limit = encoderCap
	}

	n := 0
	for n < limit && src[j+n] == src[cur+n] {
		n++
	}
	return n
}
