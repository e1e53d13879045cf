package pointio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/twoopt/geom"
)

// Codec names a file encoding.
type Codec string

// Supported codecs.
const (
	Plain Codec = "plain"
	Zstd  Codec = "zstd"
	LZ4   Codec = "lz4"
)

// CodecFor picks the codec from the path's extension.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return Plain
	}
}

// closeChain closes in order and joins the errors; decoders and encoders
// come before the file they wrap.
type closeChain []func() error

func (c closeChain) Close() error {
	var errs []error
	for _, fn := range c {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

type readCloser struct {
	io.Reader
	closeChain
}

type writeCloser struct {
	io.Writer
	closeChain
}

// Open returns a decoding reader for path.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch CodecFor(path) {
	case Zstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		return &readCloser{Reader: dec, closeChain: closeChain{
			func() error { dec.Close(); return nil },
			f.Close,
		}}, nil
	case LZ4:
		return &readCloser{Reader: lz4.NewReader(f), closeChain: closeChain{f.Close}}, nil
	default:
		return f, nil
	}
}

// Create truncates path and returns an encoding writer for it.
// Close must be called to flush the encoder.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch CodecFor(path) {
	case Zstd:
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, err
		}

		return &writeCloser{Writer: enc, closeChain: closeChain{enc.Close, f.Close}}, nil
	case LZ4:
		enc := lz4.NewWriter(f)

		return &writeCloser{Writer: enc, closeChain: closeChain{enc.Close, f.Close}}, nil
	default:
		return f, nil
	}
}

// Load reads a point set from path.
func Load(path string) (ps geom.PointSet, err error) {
	rc, err := Open(path)
	if err != nil {
		return geom.PointSet{}, err
	}
	defer func() {
		if cerr := rc.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return Read(rc)
}

// Save writes a point set to path.
func Save(path string, ps geom.PointSet) (err error) {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return Write(wc, ps)
}
