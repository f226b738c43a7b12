package rex

import "io"

// Input abstracts over the three shapes text can arrive in — a string,
// a byte slice, or a stream — so the string/byte API surfaces can share
// one matching implementation underneath.
type Input interface {
	Bytes() []byte
}

type stringInput string

func (s stringInput) Bytes() []byte { return []byte(s) }

type bytesInput []byte

func (b bytesInput) Bytes() []byte { return b }

// readerInput reads r to completion and returns an Input over the
// result. The matcher needs random access into the whole text, so
// there is no streaming variant.
func readerInput(r io.Reader) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytesInput(data), nil
}
