package domain

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

type PayloadKind int

const (
	PayloadNone PayloadKind = iota
	PayloadText
	PayloadWrapped
	PayloadRaw
)

// VideoPayload is the video blob accepted by the upload route. The shape is
// resolved once, when the JSON is decoded:
//
//	"AAEC..."                 -> PayloadText (base64)
//	{"data": "AAEC..."}       -> PayloadWrapped (base64)
//	[0, 1, 2] or {"data": [0, 1, 2]} -> PayloadRaw
type VideoPayload struct {
	Kind PayloadKind
	text string
	raw  []byte
}

func TextPayload(b64 string) VideoPayload {
	return VideoPayload{Kind: PayloadText, text: b64}
}

func WrappedPayload(b64 string) VideoPayload {
	return VideoPayload{Kind: PayloadWrapped, text: b64}
}

func RawPayload(b []byte) VideoPayload {
	return VideoPayload{Kind: PayloadRaw, raw: b}
}

func (p VideoPayload) IsZero() bool {
	switch p.Kind {
	case PayloadText, PayloadWrapped:
		return p.text == ""
	case PayloadRaw:
		return len(p.raw) == 0
	default:
		return true
	}
}

// Bytes normalizes the payload into the byte buffer sent to the host.
func (p VideoPayload) Bytes() ([]byte, error) {
	switch p.Kind {
	case PayloadText, PayloadWrapped:
		b, err := decodeBase64(p.text)
		if err != nil {
			return nil, Internal("Failed to decode video data", err)
		}
		return b, nil
	case PayloadRaw:
		return p.raw, nil
	default:
		return nil, InvalidInput("Video data is required")
	}
}

func (p *VideoPayload) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = VideoPayload{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = TextPayload(s)
		return nil

	case '[':
		b, err := byteArray(data)
		if err != nil {
			return err
		}
		*p = RawPayload(b)
		return nil

	case '{':
		var obj struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		inner := bytes.TrimSpace(obj.Data)
		if len(inner) > 0 && inner[0] == '"' {
			var s string
			if err := json.Unmarshal(inner, &s); err != nil {
				return err
			}
			*p = WrappedPayload(s)
			return nil
		}
		if len(inner) > 0 && inner[0] == '[' {
			b, err := byteArray(inner)
			if err != nil {
				return err
			}
			*p = RawPayload(b)
			return nil
		}
		return fmt.Errorf("video data object has no usable data field")
	}

	return fmt.Errorf("unsupported video data shape")
}

func (p VideoPayload) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PayloadText:
		return json.Marshal(p.text)
	case PayloadWrapped:
		return json.Marshal(map[string]string{"data": p.text})
	case PayloadRaw:
		// encoding/json would emit a base64 string for []byte
		ints := make([]int, len(p.raw))
		for i, b := range p.raw {
			ints[i] = int(b)
		}
		return json.Marshal(ints)
	default:
		return []byte("null"), nil
	}
}

func byteArray(data []byte) ([]byte, error) {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return nil, fmt.Errorf("video data array must hold byte values: %w", err)
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("video data array value %d out of byte range", v)
		}
		out[i] = byte(v)
	}
	return out, nil
}

var errNoBase64Data = errors.New("no base64 data")

// decodeBase64 decodes like Node's Buffer.from(s, "base64"): both alphabets
// may be mixed, characters outside them are skipped, decoding stops at the
// first '=' and a dangling sixth-bit group is dropped.
func decodeBase64(s string) ([]byte, error) {
	clean := make([]byte, 0, len(s))
scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '=':
			break scan
		case c == '-':
			clean = append(clean, '+')
		case c == '_':
			clean = append(clean, '/')
		case c == '+', c == '/',
			c >= 'A' && c <= 'Z',
			c >= 'a' && c <= 'z',
			c >= '0' && c <= '9':
			clean = append(clean, c)
		}
	}
	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}

	out, err := base64.RawStdEncoding.DecodeString(string(clean))
	if err != nil {
		return nil, err
	}
	if len(out) == 0 && s != "" {
		return nil, errNoBase64Data
	}
	return out, nil
}
