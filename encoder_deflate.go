package microcompress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// EncoderDeflate implements the "deflate" content coding.
// Despite the name, the HTTP "deflate" coding is the zlib format
// (RFC 9110 §8.4.1.2), not raw DEFLATE.
type EncoderDeflate struct {
}

func (EncoderDeflate) Token() string {
	return "deflate"
}

func (EncoderDeflate) CheckLevel(level int) error {
	if level < zlib.DefaultCompression || level > zlib.BestCompression {
		return fmt.Errorf("microcompress: deflate level %d out of range [%d, %d]",
			level, zlib.DefaultCompression, zlib.BestCompression)
	}
	return nil
}

func (e EncoderDeflate) Encode(body []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level)
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
