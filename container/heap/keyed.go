// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"bytes"
	"compress/flate"
	"container/heap"
	"encoding/binary"
	"encoding/gob"
	"encoding/json"
	"sync"

	"cloudeng.io/errors"
)

type keyedEntry struct {
	Key   string `json:"k"`
	Value int64  `json:"v"`
}

// Keyed implements a heap whose entries pair a string key with an int64
// value so that existing entries can be updated or removed by key in
// O(log n). It keeps a running sum of the values it contains, supports
// both Min and Max ordering and is safe for concurrent use.
type Keyed struct {
	mu sync.Mutex
	h  *keyed
}

// NewKeyed returns a new instance of Keyed with the specified order.
func NewKeyed(order Order) *Keyed {
	return &Keyed{
		h: &keyed{
			order:  order,
			lookup: map[string]int{},
		},
	}
}

// keyed implements container/heap.Interface; the lookup map tracks the
// position of every key and is maintained by Swap.
type keyed struct {
	order   Order
	entries []keyedEntry
	total   int64
	lookup  map[string]int
}

func (kh *keyed) Len() int {
	return len(kh.entries)
}

func (kh *keyed) Less(i, j int) bool {
	if kh.order == Max {
		return kh.entries[i].Value > kh.entries[j].Value
	}
	return kh.entries[i].Value < kh.entries[j].Value
}

func (kh *keyed) Swap(i, j int) {
	kh.lookup[kh.entries[i].Key] = j
	kh.lookup[kh.entries[j].Key] = i
	kh.entries[i], kh.entries[j] = kh.entries[j], kh.entries[i]
}

func (kh *keyed) Push(x interface{}) {
	e := x.(keyedEntry)
	kh.entries = append(kh.entries, e)
	kh.lookup[e.Key] = len(kh.entries) - 1
}

func (kh *keyed) Pop() interface{} {
	old := kh.entries
	n := len(old)
	x := old[n-1]
	kh.entries = old[0 : n-1]
	kh.total -= x.Value
	delete(kh.lookup, x.Key)
	return x
}

func (kh *keyed) update(e keyedEntry) {
	idx, ok := kh.lookup[e.Key]
	if !ok {
		heap.Push(kh, e)
		kh.total += e.Value
		return
	}
	kh.total += e.Value - kh.entries[idx].Value
	kh.entries[idx] = e
	heap.Fix(kh, idx)
}

func (kh *keyed) remove(key string) {
	idx, ok := kh.lookup[key]
	if !ok {
		return
	}
	heap.Remove(kh, idx)
}

// Update updates the value associated with key or adds it to the heap.
func (k *Keyed) Update(key string, value int64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.h.update(keyedEntry{Key: key, Value: value})
}

// Pop removes the top most entry (smallest for Min, largest for Max)
// from the heap.
func (k *Keyed) Pop() (string, int64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e := heap.Pop(k.h).(keyedEntry)
	return e.Key, e.Value
}

// KV represents a key/value pair returned by TopN.
type KV struct {
	Key   string
	Value int64
}

// TopN removes and returns at most the top most n entries from the heap.
func (k *Keyed) TopN(n int) []KV {
	k.mu.Lock()
	defer k.mu.Unlock()
	if n > len(k.h.entries) {
		n = len(k.h.entries)
	}
	out := make([]KV, n)
	for i := 0; i < n; i++ {
		e := heap.Pop(k.h).(keyedEntry)
		out[i] = KV{Key: e.Key, Value: e.Value}
	}
	return out
}

// Total returns the current sum of all values in the heap.
func (k *Keyed) Total() int64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.h.total
}

// Len returns the number of entries in the heap.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.h.entries)
}

// Remove removes the entry with the specified key from the heap, if it
// is present.
func (k *Keyed) Remove(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.h.remove(key)
}

// GobEncode implements gob.GobEncoder.
func (k *Keyed) GobEncode() ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	errs := errors.M{}

	// Prepare two buffers, one for values, the other for keys.
	// Values are written as varints and keys as compressed strings.
	nVals := len(k.h.entries)
	keyBuf := bytes.NewBuffer(make([]byte, 0, nVals*16))
	keyWriter, err := flate.NewWriter(keyBuf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	keyEnc := gob.NewEncoder(keyWriter)
	valBuf := make([]byte, 0, nVals*3)
	valIdx := 0
	for _, e := range k.h.entries {
		var b [binary.MaxVarintLen64]byte
		n := binary.PutVarint(b[:], e.Value)
		valIdx += n
		valBuf = append(valBuf, b[:n]...)
		errs.Append(keyEnc.Encode(e.Key))
	}
	valBuf = valBuf[:valIdx]
	errs.Append(keyWriter.Flush())
	errs.Append(keyWriter.Close())
	if err := errs.Err(); err != nil {
		return nil, err
	}

	// Write out the gob encodings of the key and value bufs and
	// associated metadata.
	sz := keyBuf.Len() + valIdx + 64
	buf := bytes.NewBuffer(make([]byte, 0, sz))
	enc := gob.NewEncoder(buf)
	errs.Append(enc.Encode(len(k.h.entries)))
	errs.Append(enc.Encode(k.h.order))
	errs.Append(enc.Encode(k.h.total))
	errs.Append(enc.Encode(keyBuf.Bytes()))
	errs.Append(enc.Encode(valBuf))
	return buf.Bytes(), errs.Err()
}

// GobDecode implements gob.GobDecoder.
func (k *Keyed) GobDecode(buf []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	dec := gob.NewDecoder(bytes.NewBuffer(buf))
	errs := errors.M{}
	var size int
	errs.Append(dec.Decode(&size))
	k.h = &keyed{
		entries: make([]keyedEntry, size),
		lookup:  make(map[string]int, size),
	}
	errs.Append(dec.Decode(&k.h.order))
	errs.Append(dec.Decode(&k.h.total))
	var keyBuf, valBuf []byte
	errs.Append(dec.Decode(&keyBuf))
	errs.Append(dec.Decode(&valBuf))

	keyReader := flate.NewReader(bytes.NewBuffer(keyBuf))
	keyDec := gob.NewDecoder(keyReader)
	valIdx := 0
	for i := 0; i < size; i++ {
		var n int
		k.h.entries[i].Value, n = binary.Varint(valBuf[valIdx:])
		valIdx += n
		var key string
		errs.Append(keyDec.Decode(&key))
		k.h.entries[i].Key = key
		k.h.lookup[key] = i
	}
	return errs.Err()
}

type keyedEncoding struct {
	Size    int             `json:"size"`
	Order   Order           `json:"order"`
	Total   int64           `json:"total"`
	Entries json.RawMessage `json:"entries"`
}

// MarshalJSON implements json.Marshaler.
func (k *Keyed) MarshalJSON() ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	errs := errors.M{}
	entbuf := &bytes.Buffer{}
	enc := json.NewEncoder(entbuf)
	errs.Append(enc.Encode(k.h.entries))
	buf := &bytes.Buffer{}
	enc = json.NewEncoder(buf)
	errs.Append(enc.Encode(keyedEncoding{
		Size:    len(k.h.entries),
		Order:   k.h.order,
		Total:   k.h.total,
		Entries: entbuf.Bytes(),
	}))
	return buf.Bytes(), errs.Err()
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *Keyed) UnmarshalJSON(buf []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	dec := json.NewDecoder(bytes.NewBuffer(buf))
	hdr := keyedEncoding{}
	errs := errors.M{}
	errs.Append(dec.Decode(&hdr))
	k.h = &keyed{
		order:   hdr.Order,
		total:   hdr.Total,
		entries: make([]keyedEntry, hdr.Size),
		lookup:  make(map[string]int, hdr.Size),
	}
	dec = json.NewDecoder(bytes.NewBuffer(hdr.Entries))
	errs.Append(dec.Decode(&k.h.entries))
	for i, e := range k.h.entries {
		k.h.lookup[e.Key] = i
	}
	return errs.Err()
}
