package smolder

// Child signatures detect "nothing changed" cheaply: a digest over a
// viewer's (element identity, visibility) pairs plus the child count.
// The per-element hashes are combined commutatively, so the digest is
// insensitive to enumeration order but changes whenever a child appears,
// vanishes, or toggles visibility.

// mix64 is the splitmix64 finalizer. Cheap and good enough for change
// detection; this is not a cryptographic digest.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// childHash hashes one child's identity together with its visibility bit.
func childHash(id ElementID, visible bool) uint64 {
	v := uint64(id)
	if visible {
		v |= 1 << 63
	}
	return mix64(v)
}

// sigAccum accumulates child hashes order-insensitively.
type sigAccum struct {
	sum   uint64
	xor   uint64
	count uint64
}

func (a *sigAccum) add(id ElementID, visible bool) {
	h := childHash(id, visible)
	a.sum += h
	a.xor ^= h
	a.count++
}

func (a *sigAccum) digest() uint64 {
	return mix64(a.sum^a.count) ^ a.xor
}
