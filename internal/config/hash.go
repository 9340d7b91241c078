package config

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// hasher writes a length-prefixed canonical encoding into FNV-1a so that
// adjacent fields cannot collide by shifting bytes between them.
type hasher struct {
	h   hash.Hash64
	buf [8]byte
}

func newHasher() *hasher {
	return &hasher{h: fnv.New64a()}
}

func (h *hasher) uint(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.h.Write(h.buf[:])
}

func (h *hasher) string(s string) {
	h.uint(uint64(len(s)))
	h.h.Write([]byte(s))
}

func (h *hasher) strings(ss []string) {
	h.uint(uint64(len(ss)))
	for _, s := range ss {
		h.string(s)
	}
}

func (h *hasher) bool(b bool) {
	if b {
		h.uint(1)
	} else {
		h.uint(0)
	}
}

func (h *hasher) sum() uint64 {
	return h.h.Sum64()
}

// CombineHashes folds component hashes into one, order-sensitively.
func CombineHashes(parts ...uint64) uint64 {
	h := newHasher()
	for _, p := range parts {
		h.uint(p)
	}
	return h.sum()
}
