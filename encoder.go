package microcompress

import "errors"

// Encoder is the interface for content coding encoders
type Encoder interface {

	// Token returns the content coding token the encoder implements,
	// as it appears in Accept-Encoding and Content-Encoding headers
	Token() string

	// CheckLevel reports whether a compression level is within the codec's
	// valid range. Called once at startup.
	CheckLevel(level int) error

	// Encode compresses a response body at the given level
	Encode(body []byte, level int) ([]byte, error)
}

var errNoEncoder = errors.New("no encoder for content coding")

// EncodingError reports a failed compression attempt. The middleware treats
// it as fatal for that response's compression only and falls back to the
// uncompressed body.
type EncodingError struct {
	Encoding string
	Err      error
}

func (e EncodingError) Error() string {
	return "microcompress: " + e.Encoding + ": " + e.Err.Error()
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

func defaultEncoders() []Encoder {
	return []Encoder{
		EncoderGzip{},
		EncoderDeflate{},
		EncoderBrotli{},
		EncoderZstd{},
		EncoderSnappy{},
	}
}
