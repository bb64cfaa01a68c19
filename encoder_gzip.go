package microcompress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
)

// EncoderGzip implements the "gzip" content coding.
// Levels follow the usual 1 (fastest) to 9 (smallest) scale,
// with -1 selecting the codec default.
type EncoderGzip struct {
}

func (EncoderGzip) Token() string {
	return "gzip"
}

func (EncoderGzip) CheckLevel(level int) error {
	if level < gzip.DefaultCompression || level > gzip.BestCompression {
		return fmt.Errorf("microcompress: gzip level %d out of range [%d, %d]",
			level, gzip.DefaultCompression, gzip.BestCompression)
	}
	return nil
}

func (e EncoderGzip) Encode(body []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, EncodingError{Encoding: e.Token(), Err: err}
	}
	if _, err := zw.Write(body); err != nil {
		return nil, EncodingError{Encoding: e.Token(), Err: err}
	}
	if err := zw.Close(); err != nil {
		return nil, EncodingError{Encoding: e.Token(), Err: err}
	}
	return buf.Bytes(), nil
}
