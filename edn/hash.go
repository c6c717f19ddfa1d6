package edn

import (
	"hash/maphash"
	"math"

	"xdao.co/edn/data"
)

var hashSeed = maphash.MakeSeed()

// Hash feeds v's hash contribution into sink. Values that compare Equal feed
// identical bytes. The kind tag is mixed in first, so values of different
// kinds with identical payloads diverge.
func Hash(v Edn, sink *data.Sink) {
	_ = sink.WriteByte(byte(v.Kind()))
	switch x := v.(type) {
	case Nil:
	case Bool:
		if x {
			_ = sink.WriteByte(1)
		} else {
			_ = sink.WriteByte(0)
		}
	case Int:
		sink.WriteInt64(int64(x))
	case Float:
		sink.WriteUint64(math.Float64bits(float64(x)))
	case Char:
		sink.WriteUint64(uint64(uint32(x)))
	case Str:
		hashString(sink, string(x))
	case Symbol:
		hashString(sink, string(x))
	case Keyword:
		hashString(sink, string(x))
	case List:
		hashSeq(sink, x)
	case Vector:
		hashSeq(sink, x)
	case Map:
		sink.WriteUint64(uint64(len(x.entries)))
		for _, e := range x.entries {
			Hash(e.Key, sink)
			Hash(e.Val, sink)
		}
	case Set:
		hashSeq(sink, x.elems)
	case Tagged:
		hashString(sink, x.Tag)
		Hash(x.Value, sink)
	case Data:
		x.Datum.Hash(sink)
	}
}

// Sum64 returns a process-stable 64-bit hash of v, consistent with Equal.
func Sum64(v Edn) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	Hash(v, data.NewSink(&h))
	return h.Sum64()
}

func hashString(sink *data.Sink, s string) {
	sink.WriteUint64(uint64(len(s)))
	sink.WriteString(s)
}

func hashSeq(sink *data.Sink, elems []Edn) {
	sink.WriteUint64(uint64(len(elems)))
	for _, e := range elems {
		Hash(e, sink)
	}
}
