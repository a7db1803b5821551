package tags

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// atom is one box of an ISO base media file.
type atom struct {
	typ        string
	start, end int64
}

// iTunes metadata handler: version/flags, pre_defined, "mdir", "appl", reserved, empty name.
var hdlrPayload = []byte{
	0, 0, 0, 0,
	0, 0, 0, 0,
	'm', 'd', 'i', 'r',
	'a', 'p', 'p', 'l',
	0, 0, 0, 0,
	0, 0, 0, 0,
	0,
}

// makeAtom builds a box with a 32-bit size header.
func makeAtom(typ string, payload ...[]byte) []byte {
	n := 8
	for _, p := range payload {
		n += len(p)
	}
	b := make([]byte, 4, n)
	binary.BigEndian.PutUint32(b, uint32(n))
	b = append(b, typ...)
	for _, p := range payload {
		b = append(b, p...)
	}
	return b
}

// metaAtom returns a meta full box holding a handler and an empty ilst.
func metaAtom() []byte {
	return makeAtom("meta", []byte{0, 0, 0, 0}, makeAtom("hdlr", hdlrPayload), makeAtom("ilst"))
}

func badAtom(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptContainer, fmt.Sprintf(format, args...))
}

// topLevel lists the top-level boxes of r.
func topLevel(r io.ReaderAt, size int64) ([]atom, error) {
	var (
		atoms []atom
		hdr   [16]byte
	)
	for off := int64(0); off < size; {
		if size-off < 8 {
			return nil, badAtom("truncated box header at %d", off)
		}
		if _, err := r.ReadAt(hdr[:8], off); err != nil {
			return nil, err
		}
		n, h := int64(binary.BigEndian.Uint32(hdr[:4])), int64(8)
		switch n {
		case 0:
			n = size - off
		case 1:
			if _, err := r.ReadAt(hdr[8:16], off+8); err != nil {
				return nil, err
			}
			n, h = int64(binary.BigEndian.Uint64(hdr[8:16])), 16
		}
		if n < h || n > size-off {
			return nil, badAtom("box %q at %d has size %d", hdr[4:8], off, n)
		}
		atoms = append(atoms, atom{typ: string(hdr[4:8]), start: off, end: off + n})
		off += n
	}
	return atoms, nil
}

func findAtom(atoms []atom, typ string) (atom, bool) {
	for _, a := range atoms {
		if a.typ == typ {
			return a, true
		}
	}
	return atom{}, false
}

// sizeAt returns the size of the 32-bit box at buf[off:] bounded by end.
func sizeAt(buf []byte, off, end int) (int, error) {
	if end-off < 8 {
		return 0, badAtom("truncated box header at %d", off)
	}
	n := int(binary.BigEndian.Uint32(buf[off:]))
	if n < 8 || n > end-off {
		return 0, badAtom("box %q has size %d", buf[off+4:off+8], n)
	}
	return n, nil
}

// child finds the first box of type typ inside buf[from:to].
func child(buf []byte, from, to int, typ string) (start, end int, ok bool, err error) {
	for off := from; off < to; {
		n, err := sizeAt(buf, off, to)
		if err != nil {
			return 0, 0, false, err
		}
		if string(buf[off+4:off+8]) == typ {
			return off, off + n, true, nil
		}
		off += n
	}
	return 0, 0, false, nil
}

// splice inserts ins at buf[at] and grows the 32-bit size of every box
// starting at an offset in parents.
func splice(buf []byte, at int, ins []byte, parents ...int) []byte {
	out := make([]byte, 0, len(buf)+len(ins))
	out = append(out, buf[:at]...)
	out = append(out, ins...)
	out = append(out, buf[at:]...)
	for _, p := range parents {
		n := binary.BigEndian.Uint32(out[p:])
		binary.BigEndian.PutUint32(out[p:], n+uint32(len(ins)))
	}
	return out
}

// withIlst returns moov with a udta/meta/ilst path, adding whatever part of
// it is missing. The bool reports whether moov changed.
func withIlst(moov []byte) ([]byte, bool, error) {
	udta, udtaEnd, ok, err := child(moov, 8, len(moov), "udta")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return splice(moov, len(moov), makeAtom("udta", metaAtom()), 0), true, nil
	}

	meta, metaEnd, ok, err := child(moov, udta+8, udtaEnd, "meta")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return splice(moov, udtaEnd, metaAtom(), 0, udta), true, nil
	}

	// meta is a full box: version and flags precede its children
	if metaEnd-meta < 12 {
		return nil, false, badAtom("meta box too short")
	}
	_, _, ok, err = child(moov, meta+12, metaEnd, "ilst")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return splice(moov, metaEnd, makeAtom("ilst"), 0, udta, meta), true, nil
	}
	return moov, false, nil
}

// shiftChunkOffsets adds delta to every stco and co64 entry under buf[from:to].
func shiftChunkOffsets(buf []byte, from, to int, delta int64) error {
	for off := from; off < to; {
		n, err := sizeAt(buf, off, to)
		if err != nil {
			return err
		}
		switch typ := string(buf[off+4 : off+8]); typ {
		case "trak", "mdia", "minf", "stbl":
			if err := shiftChunkOffsets(buf, off+8, off+n, delta); err != nil {
				return err
			}
		case "stco", "co64":
			width := 4
			if typ == "co64" {
				width = 8
			}
			if n < 16 {
				return badAtom("%s box too short", typ)
			}
			count := int(binary.BigEndian.Uint32(buf[off+12:]))
			if count > (n-16)/width {
				return badAtom("%s declares %d entries", typ, count)
			}
			for i := 0; i < count; i++ {
				p := off + 16 + i*width
				if width == 8 {
					binary.BigEndian.PutUint64(buf[p:], uint64(int64(binary.BigEndian.Uint64(buf[p:]))+delta))
					continue
				}
				v := int64(binary.BigEndian.Uint32(buf[p:])) + delta
				if v < 0 || v > math.MaxUint32 {
					return fmt.Errorf("%w: chunk offset %d overflows stco", ErrUnsupportedFormat, v)
				}
				binary.BigEndian.PutUint32(buf[p:], uint32(v))
			}
		}
		off += n
	}
	return nil
}

// ensureIlst gives the M4A at path an empty ilst box when it has none, so
// go-mp4tag can write into it. Chunk offsets are moved along when moov
// precedes the media data.
func ensureIlst(path string) error {
	tmp, err := rewriteWithIlst(path)
	if err != nil || tmp == "" {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// rewriteWithIlst writes a copy of path with the ilst added and returns the
// copy's path, or "" when path already has one.
func rewriteWithIlst(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	atoms, err := topLevel(f, info.Size())
	if err != nil {
		return "", err
	}
	moov, ok := findAtom(atoms, "moov")
	if !ok {
		return "", badAtom("moov box not present")
	}

	orig := make([]byte, moov.end-moov.start)
	if _, err := f.ReadAt(orig, moov.start); err != nil {
		return "", err
	}
	if int64(binary.BigEndian.Uint32(orig)) != int64(len(orig)) {
		return "", fmt.Errorf("%w: 64-bit moov box", ErrUnsupportedFormat)
	}
	grown, changed, err := withIlst(orig)
	if err != nil || !changed {
		return "", err
	}
	if mdat, ok := findAtom(atoms, "mdat"); ok && mdat.start > moov.start {
		if err := shiftChunkOffsets(grown, 8, len(grown), int64(len(grown)-len(orig))); err != nil {
			return "", err
		}
	}

	out, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}
	err = writeSpliced(out, f, moov, grown, info.Size())
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(out.Name(), info.Mode().Perm())
	}
	if err != nil {
		_ = os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}

// writeSpliced copies src to dst with the moov box replaced by grown.
func writeSpliced(dst io.Writer, src io.ReaderAt, moov atom, grown []byte, size int64) error {
	if _, err := io.Copy(dst, io.NewSectionReader(src, 0, moov.start)); err != nil {
		return err
	}
	if _, err := dst.Write(grown); err != nil {
		return err
	}
	_, err := io.Copy(dst, io.NewSectionReader(src, moov.end, size-moov.end))
	return err
}
