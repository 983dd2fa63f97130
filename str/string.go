// Package str provides String, a growable byte string terminated by a zero
// sentinel, built on the same growth rule as array.Array.
//
// # Layout
//
// A String of length n occupies n+1 bytes of its block: the content followed
// by a 0 byte. The sentinel counts toward Cap but not Len, so CStr can hand
// the block to code that expects a NUL-terminated string. Appends grow the
// block to GrowthFactor × (new length + 1).
//
// Strings are raw bytes. Nothing here knows about UTF-8 or any other
// encoding; Len counts bytes and Find searches for a byte.
//
// # Moved-from strings
//
// Move, MoveFrom and Release leave the source with no block: Len and Cap are
// 0, Bytes and CStr are nil. Such a string is still usable; the next append
// allocates a fresh block and restores the sentinel.
//
// # Thread Safety
//
// Strings are not safe for concurrent use. Strings on alloc.OffHeap may live
// on different goroutines because the arena is locked internally.
package str

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/bufkit/cursor"
	"github.com/joshuapare/bufkit/internal/buf"
	"github.com/joshuapare/bufkit/match"
)

// String is a sentinel-terminated byte string. Build one with Empty, New or
// FromBytes.
type String struct {
	b          buf.Buffer[byte]
	matchSteps int
}

// Empty returns a string of length 0 and capacity 1 holding only the
// sentinel.
func Empty(opts *Options) (*String, error) {
	s := opts.build()
	if err := s.b.Resize(1); err != nil {
		return nil, err
	}
	return s, nil
}

// New returns a copy of v with capacity len(v)+1. Content after a 0 byte in
// v is dropped.
func New(v string, opts *Options) (*String, error) {
	if i := strings.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	s := opts.build()
	if err := s.b.Resize(len(v) + 1); err != nil {
		return nil, err
	}
	copy(s.b.Block(), v)
	return s, nil
}

// FromBytes returns a copy of p up to its first 0 byte, or all of p when it
// has none. A nil p fails with ErrInvalidConstruction; an empty non-nil p
// gives an empty string.
func FromBytes(p []byte, opts *Options) (*String, error) {
	if p == nil {
		return nil, ErrInvalidConstruction
	}
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	s := opts.build()
	if err := s.b.Resize(len(p) + 1); err != nil {
		return nil, err
	}
	copy(s.b.Block(), p)
	return s, nil
}

// Len returns the number of bytes before the sentinel.
func (s *String) Len() int { return max(s.b.Len()-1, 0) }

// Cap returns the block size in bytes, sentinel included.
func (s *String) Cap() int { return s.b.Cap() }

// Bytes returns the content without the sentinel. The slice aliases the
// block and is invalidated by the next append.
func (s *String) Bytes() []byte {
	if s.b.Block() == nil {
		return nil
	}
	return s.b.Block()[:s.Len()]
}

// CStr returns the content followed by the sentinel, nil for a moved-from
// string.
func (s *String) CStr() []byte { return s.b.Live() }

// String returns a Go copy of the content.
func (s *String) String() string { return string(s.Bytes()) }

// At returns byte i.
func (s *String) At(i int) (byte, error) {
	if err := buf.CheckIndex(i, s.Len()); err != nil {
		return 0, err
	}
	return s.b.Block()[i], nil
}

// Set overwrites byte i. c must not be 0.
func (s *String) Set(i int, c byte) error {
	if err := buf.CheckIndex(i, s.Len()); err != nil {
		return err
	}
	if c == 0 {
		return fmt.Errorf("%w: index %d", ErrInvalidByte, i)
	}
	s.b.Block()[i] = c
	return nil
}

// AppendByte appends c. c must not be 0.
func (s *String) AppendByte(c byte) error {
	if c == 0 {
		return ErrInvalidByte
	}
	return s.append([]byte{c})
}

// AppendString appends v up to its first 0 byte.
func (s *String) AppendString(v string) error {
	if i := strings.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return s.append([]byte(v))
}

// Append appends the content of o. o may be s itself.
func (s *String) Append(o *String) error {
	p := o.Bytes()
	if o == s {
		p = bytes.Clone(p)
	}
	return s.append(p)
}

// append copies p (free of 0 bytes) behind the content and rewrites the
// sentinel. On error s is unchanged.
func (s *String) append(p []byte) error {
	n := s.Len()
	total, ok := buf.AddOverflowSafe(n, len(p))
	if ok {
		total, ok = buf.AddOverflowSafe(total, 1)
	}
	if !ok {
		return fmt.Errorf("%w: %d + %d bytes", ErrCapacityOverflow, n, len(p))
	}
	if err := s.b.Reserve(total); err != nil {
		return err
	}
	block := s.b.Block()
	copy(block[n:], p)
	block[total-1] = 0
	s.b.SetLen(total)
	return nil
}

// Concat returns a new string holding a followed by b, using a's allocator.
func Concat(a, b *String) (*String, error) {
	out, err := a.Clone()
	if err != nil {
		return nil, err
	}
	if err := out.Append(b); err != nil {
		_ = out.Release()
		return nil, err
	}
	return out, nil
}

// Clone returns a deep copy with the same capacity.
func (s *String) Clone() (*String, error) {
	out := &String{b: buf.New(s.b.Allocator(), s.b.Factor()), matchSteps: s.matchSteps}
	if err := out.b.CopyFrom(&s.b, s.b.Cap()); err != nil {
		return nil, err
	}
	return out, nil
}

// Move transfers s's block to a new string and leaves s moved-from.
func (s *String) Move() *String {
	return &String{b: s.b.Take(), matchSteps: s.matchSteps}
}

// Assign replaces s's content with a copy of o's, capacity included.
// Assigning a string to itself does nothing.
func (s *String) Assign(o *String) error {
	return s.b.CopyFrom(&o.b, o.b.Cap())
}

// MoveFrom releases s and takes over o's block, leaving o moved-from.
func (s *String) MoveFrom(o *String) error {
	return s.b.MoveFrom(&o.b)
}

// Release returns the block to the allocator and leaves s moved-from.
func (s *String) Release() error {
	return s.b.Release()
}

// Equal reports whether a and b hold the same bytes. Capacity is ignored.
func Equal(a, b *String) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// EqualString reports whether s holds exactly the bytes of v.
func (s *String) EqualString(v string) bool {
	return string(s.Bytes()) == v
}

// Begin returns a cursor at the first byte.
func (s *String) Begin() cursor.Iterator[byte] {
	return cursor.New[byte, cursor.Forward](s.b.Block(), 0)
}

// End returns a cursor at the sentinel.
func (s *String) End() cursor.Iterator[byte] {
	return cursor.New[byte, cursor.Forward](s.b.Block(), s.Len())
}

// Find returns a cursor at the first c, or End when there is none.
func (s *String) Find(c byte) cursor.Iterator[byte] {
	i := bytes.IndexByte(s.Bytes(), c)
	if i < 0 {
		return s.End()
	}
	return cursor.New[byte, cursor.Forward](s.b.Block(), i)
}

// Match reports whether pattern matches the content. See package match for
// the pattern language. With Options.MatchSteps set, an overlong search fails
// with match.ErrStepLimit.
func (s *String) Match(pattern string) (bool, error) {
	m := match.Matcher{MaxSteps: s.matchSteps}
	return m.Match([]byte(pattern), s.Bytes())
}
