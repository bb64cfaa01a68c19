package microcompress

import (
	"github.com/golang/snappy"
)

// EncoderSnappy implements a non-standard "snappy" content coding.
// Useful between services that both speak it: much faster than gzip at a
// larger output size. Snappy has no compression levels, so the shared level
// setting is ignored.
type EncoderSnappy struct {
}

func (EncoderSnappy) Token() string {
	return "snappy"
}

func (EncoderSnappy) CheckLevel(level int) error {
	return nil
}

func (EncoderSnappy) Encode(body []byte, level int) ([]byte, error) {
	return snappy.Encode(nil, body), nil
}
