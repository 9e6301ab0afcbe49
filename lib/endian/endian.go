// Package endian provides byte-order primitives for copying fixed-width
// integers to and from a byte slice under a declared endianness.
//
// # Overview
//
// An Order is Little, Big, or Native; Native is a convenience that binds to
// whichever of Little/Big matches the host, detected once at package-init
// time and applied by Resolve on every put/get. PutUint/GetUint handle any
// width up to 8 bytes, forwarding 2-, 4- and 8-byte widths to
// encoding/binary and using a byte-at-a-time loop for the others.
//
// # Dependencies
//
// Uses only the Go standard library (encoding/binary, unsafe for host
// byte-order detection).
//
// # Scope
//
// Both directions are infallible given a correctly sized destination or
// source slice; length checking is the caller's responsibility (see
// lib/cursor for the bounds-checked reader/writer built on top of this
// package).
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Order names a declared byte order for a fixed-width integer encoding.
type Order uint8

const (
	// Little is least-significant-byte-first.
	Little Order = iota
	// Big is most-significant-byte-first.
	Big
	// Native resolves to whichever of Little/Big matches the host CPU.
	Native
)

// String renders the order for diagnostic messages.
func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

var hostIsBig = func() bool {
	var probe uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&probe))
	return b[0] == 0
}()

// Resolve maps Native to the concrete Little or Big order of the host.
// Little and Big are returned unchanged.
func Resolve(o Order) Order {
	if o != Native {
		return o
	}
	if hostIsBig {
		return Big
	}
	return Little
}

// PutUint writes the low len(dst)*8 bits of v into dst under the declared
// order. Lengths 2, 4, and 8 use encoding/binary; other lengths (including
// 1) fall back to a byte-at-a-time loop.
func PutUint(dst []byte, v uint64, order Order) {
	order = Resolve(order)
	n := len(dst)
	switch {
	case n == 2 && order == Big:
		binary.BigEndian.PutUint16(dst, uint16(v))
		return
	case n == 2 && order == Little:
		binary.LittleEndian.PutUint16(dst, uint16(v))
		return
	case n == 4 && order == Big:
		binary.BigEndian.PutUint32(dst, uint32(v))
		return
	case n == 4 && order == Little:
		binary.LittleEndian.PutUint32(dst, uint32(v))
		return
	case n == 8 && order == Big:
		binary.BigEndian.PutUint64(dst, v)
		return
	case n == 8 && order == Little:
		binary.LittleEndian.PutUint64(dst, v)
		return
	}
	for i := 0; i < n; i++ {
		shift := uint(i) * 8
		if order == Big {
			shift = uint(n-1-i) * 8
		}
		dst[i] = byte(v >> shift)
	}
}

// GetUint reads len(src)*8 bits from src under the declared order and
// returns them zero-extended in a uint64. Lengths 2, 4, and 8 use
// encoding/binary; other lengths (including 1) fall back to a
// byte-at-a-time loop.
func GetUint(src []byte, order Order) uint64 {
	order = Resolve(order)
	n := len(src)
	switch {
	case n == 2 && order == Big:
		return uint64(binary.BigEndian.Uint16(src))
	case n == 2 && order == Little:
		return uint64(binary.LittleEndian.Uint16(src))
	case n == 4 && order == Big:
		return uint64(binary.BigEndian.Uint32(src))
	case n == 4 && order == Little:
		return uint64(binary.LittleEndian.Uint32(src))
	case n == 8 && order == Big:
		return binary.BigEndian.Uint64(src)
	case n == 8 && order == Little:
		return binary.LittleEndian.Uint64(src)
	}
	var v uint64
	for i := 0; i < n; i++ {
		shift := uint(i) * 8
		if order == Big {
			shift = uint(n-1-i) * 8
		}
		v |= uint64(src[i]) << shift
	}
	return v
}
