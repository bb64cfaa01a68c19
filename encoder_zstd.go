package microcompress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// EncoderZstd implements the "zstd" content coding.
// The shared level setting is interpreted on the zstd 1-22 scale and mapped
// onto the codec's speed presets.
type EncoderZstd struct {
}

func (EncoderZstd) Token() string {
	return "zstd"
}

func (EncoderZstd) CheckLevel(level int) error {
	if level < 1 || level > 22 {
		return fmt.Errorf("microcompress: zstd level %d out of range [1, 22]", level)
	}
	return nil
}

func (e EncoderZstd) Encode(body []byte, level int) ([]byte, error) {
	if err := e.CheckLevel(level); err != nil {
		return nil, EncodingError{Encoding: e.Token(), Err: err}
	}
	zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, EncodingError{Encoding: e.Token(), Err: err}
	}
	defer zw.Close()
	return zw.EncodeAll(body, nil), nil
}
