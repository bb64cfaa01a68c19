package microcompress

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/brotli"
)

// EncoderBrotli implements the "br" content coding.
// Brotli levels range from 0 (fastest) to 11 (smallest), so the shared
// level setting is accepted unchanged within that range.
type EncoderBrotli struct {
}

func (EncoderBrotli) Token() string {
	return "br"
}

func (EncoderBrotli) CheckLevel(level int) error {
	if level < brotli.BestSpeed || level > brotli.BestCompression {
		return fmt.Errorf("microcompress: brotli level %d out of range [%d, %d]",
			level, brotli.BestSpeed, brotli.BestCompression)
	}
	return nil
}

func (e EncoderBrotli) Encode(body []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw := brotli.NewWriterLevel(&buf, level)
	if _, err := zw.Write(body); err != nil {
		return nil, EncodingError{Encoding: e.Token(), Err: err}
	}
	if err := zw.Close(); err != nil {
		return nil, EncodingError{Encoding: e.Token(), Err: err}
	}
	return buf.Bytes(), nil
}
