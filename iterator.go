// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "encoding/binary"

// byteIter is a cursor over a contiguous byte slice, optionally skipping a
// configured digit-separator byte at positions allowed by a placement
// rule. It never fails: "no more input" is reported via isDone, not an
// error, matching the teacher's io.ByteScanner-based scan loop in
// db47h-decimal/dec_conv.go but specialized to operate over a slice
// in-place instead of through an io.ByteScanner, since this package's hot
// paths must not allocate or go through an interface call per byte.
type byteIter struct {
	buf []byte
	pos int

	separator byte // 0 means "no separator configured"
	placement SeparatorPlacement
}

func newByteIter(buf []byte) byteIter {
	return byteIter{buf: buf}
}

func newSkipByteIter(buf []byte, sep byte, placement SeparatorPlacement) byteIter {
	return byteIter{buf: buf, separator: sep, placement: placement}
}

func (it *byteIter) isDone() bool { return it.pos >= len(it.buf) }

func (it *byteIter) cursorOffset() int { return it.pos }

// peek returns the next significant byte without consuming it, skipping
// over any separator bytes first (when configured and allowed here).
func (it *byteIter) peek() (byte, bool) {
	p := it.pos
	for p < len(it.buf) {
		c := it.buf[p]
		if it.separator != 0 && c == it.separator && it.separatorHere(p) {
			p++
			continue
		}
		return c, true
	}
	return 0, false
}

// peekRaw returns the next byte without skipping separators, used by
// lexing code that needs to distinguish a separator from a digit (e.g. to
// validate placement).
func (it *byteIter) peekRaw() (byte, bool) {
	if it.pos >= len(it.buf) {
		return 0, false
	}
	return it.buf[it.pos], true
}

// next consumes and returns the next significant byte, skipping
// separators.
func (it *byteIter) next() (byte, bool) {
	for it.pos < len(it.buf) {
		c := it.buf[it.pos]
		if it.separator != 0 && c == it.separator && it.separatorHere(it.pos) {
			it.pos++
			continue
		}
		it.pos++
		return c, true
	}
	return 0, false
}

// stepBy advances the cursor by n raw bytes without interpreting them
// (used after a fast-path bulk read has already consumed n digit bytes).
func (it *byteIter) stepBy(n int) {
	it.pos += n
	if it.pos > len(it.buf) {
		it.pos = len(it.buf)
	}
}

// separatorHere reports whether the separator byte at position p is
// allowed by the placement rule, given its neighbours.
func (it *byteIter) separatorHere(p int) bool {
	prevIsDigit := p > 0 && isRadixDigit(it.buf[p-1])
	prevIsSep := p > 0 && it.buf[p-1] == it.separator
	nextIsDigit := p+1 < len(it.buf) && isRadixDigit(it.buf[p+1])
	atStart := p == 0
	atEnd := p == len(it.buf)-1
	return separatorAllowed(it.placement, atStart, atEnd, prevIsSep, prevIsDigit, nextIsDigit)
}

// isRadixDigit is a conservative over-approximation (any alnum byte) used
// only to classify separator neighbours; the actual radix check happens
// in the digit-consuming loop.
func isRadixDigit(c byte) bool {
	return charToDigit(c) != 0xFF
}

// readWord reads eight contiguous bytes as a little-endian uint64,
// without interpreting them, but only when those eight bytes contain no
// separator byte (otherwise the SWAR fast path would silently swallow a
// separator). Returns ok == false when fewer than eight bytes remain or a
// separator would be crossed, so callers fall back to byte-at-a-time.
func (it *byteIter) readWord() (word uint64, ok bool) {
	if it.pos+8 > len(it.buf) {
		return 0, false
	}
	chunk := it.buf[it.pos : it.pos+8]
	if it.separator != 0 {
		for _, c := range chunk {
			if c == it.separator {
				return 0, false
			}
		}
	}
	return binary.LittleEndian.Uint64(chunk), true
}

// skipTrailingSeparator consumes a single separator byte sitting right
// after the digit run just scanned, if the placement rule allows it here
// with nothing but non-digits (or the end of input) following. Needed
// because peek/next only skip a separator when it's on the way to another
// digit; a separator that terminates the run outright is otherwise left
// unconsumed.
func (it *byteIter) skipTrailingSeparator() {
	if c, ok := it.peekRaw(); ok && it.separator != 0 && c == it.separator && it.separatorHere(it.pos) {
		it.pos++
	}
}

// readWord32 is readWord's four-byte counterpart, used by the integer
// fast path to mop up a remaining run of 4..7 digits after the 8-byte
// SWAR loop can no longer safely proceed.
func (it *byteIter) readWord32() (word uint32, ok bool) {
	if it.pos+4 > len(it.buf) {
		return 0, false
	}
	chunk := it.buf[it.pos : it.pos+4]
	if it.separator != 0 {
		for _, c := range chunk {
			if c == it.separator {
				return 0, false
			}
		}
	}
	return binary.LittleEndian.Uint32(chunk), true
}

// remaining returns the unconsumed suffix of the buffer, including any
// separator bytes still in it.
func (it *byteIter) remaining() []byte {
	return it.buf[it.pos:]
}
