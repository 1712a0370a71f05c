// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bodyio

import (
	"encoding/binary"
	"io"
)

// maxFieldBytes bounds every var-length field this container reads (a
// nested-kernel list, a PoW index list, a var-bytes run): generous
// enough for any realistic block, small enough to keep a corrupt length
// prefix from forcing a multi-gigabyte allocation.
const maxFieldBytes = 1 << 24

func writeUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func readUint8(r io.Reader, v *uint8) error {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = buf[0]
	return nil
}

func writeBool(w io.Writer, v bool) error {
	if v {
		return writeUint8(w, 1)
	}
	return writeUint8(w, 0)
}

func readBool(r io.Reader, v *bool) error {
	var b uint8
	if err := readUint8(r, &b); err != nil {
		return err
	}
	*v = b != 0
	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader, v *uint32) error {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint32(buf[:])
	return nil
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint64(r io.Reader, v *uint64) error {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint64(buf[:])
	return nil
}

func writeInt64(w io.Writer, v int64) error {
	return writeUint64(w, uint64(v))
}

func readInt64(r io.Reader, v *int64) error {
	var u uint64
	if err := readUint64(r, &u); err != nil {
		return err
	}
	*v = int64(u)
	return nil
}

// writeVarInt serializes val to w using a variable number of bytes
// depending on its magnitude, adapted from wire.WriteVarInt with the
// protocol-version parameter dropped: this container has no
// multi-version wire format to gate on.
func writeVarInt(w io.Writer, val uint64) error {
	switch {
	case val < 0xfd:
		return writeUint8(w, uint8(val))
	case val <= 0xffff:
		if err := writeUint8(w, 0xfd); err != nil {
			return err
		}
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(val))
		_, err := w.Write(buf[:])
		return err
	case val <= 0xffffffff:
		if err := writeUint8(w, 0xfe); err != nil {
			return err
		}
		return writeUint32(w, uint32(val))
	default:
		if err := writeUint8(w, 0xff); err != nil {
			return err
		}
		return writeUint64(w, val)
	}
}

// readVarInt is the dual of writeVarInt, adapted from wire.ReadVarInt.
func readVarInt(r io.Reader) (uint64, error) {
	var disc uint8
	if err := readUint8(r, &disc); err != nil {
		return 0, err
	}
	switch disc {
	case 0xff:
		var v uint64
		err := readUint64(r, &v)
		return v, err
	case 0xfe:
		var v uint32
		err := readUint32(r, &v)
		return uint64(v), err
	case 0xfd:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(buf[:])), nil
	default:
		return uint64(disc), nil
	}
}

// writeVarBytes serializes b to w as a varInt length prefix followed by
// the bytes themselves, adapted from wire.WriteVarBytes.
func writeVarBytes(w io.Writer, b []byte) error {
	if err := writeVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// readVarBytes is the dual of writeVarBytes, adapted from
// wire.ReadVarBytes, rejecting a declared length above maxFieldBytes.
func readVarBytes(r io.Reader) ([]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxFieldBytes {
		return nil, ErrFieldTooLarge
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarInt is the exported form of writeVarInt, for callers outside
// this package that need the same framing for their own ad hoc records
// (e.g. chainwork's proof file format).
func WriteVarInt(w io.Writer, val uint64) error { return writeVarInt(w, val) }

// ReadVarInt is the exported dual of WriteVarInt.
func ReadVarInt(r io.Reader) (uint64, error) { return readVarInt(r) }
