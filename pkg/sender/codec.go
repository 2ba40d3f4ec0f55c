package sender

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/ledctl/pkg/animation"
	"github.com/arthur-debert/ledctl/pkg/errors"
)

// Frame tags used by the server.
const (
	TagData  = "DATA"
	TagInfo  = "AINF"
	TagStrip = "SINF"
	TagEnd   = "END "
)

// Delimiter terminates every frame on the wire.
const Delimiter = ";;;"

const tagLen = 4

var delimiter = []byte(Delimiter)

// Encode frames a request. Only animation.Data and animation.EndAnimation
// (or pointers to them) can be sent.
func Encode(msg any) ([]byte, error) {
	var tag string
	switch m := msg.(type) {
	case animation.Data:
		tag = TagData
	case *animation.Data:
		if m == nil {
			return nil, errors.New(errors.ErrProtocol, "cannot send nil animation data")
		}
		tag = TagData
	case animation.EndAnimation:
		tag = TagEnd
	case *animation.EndAnimation:
		if m == nil {
			return nil, errors.New(errors.ErrProtocol, "cannot send nil end request")
		}
		tag = TagEnd
	default:
		return nil, errors.Newf(errors.ErrProtocol, "cannot send message of type %T", msg)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProtocol, "failed to encode %s message", tag)
	}

	frame := make([]byte, 0, tagLen+1+len(body)+len(delimiter))
	frame = append(frame, tag...)
	frame = append(frame, ':')
	frame = append(frame, body...)
	frame = append(frame, delimiter...)
	return frame, nil
}

// Decode parses one frame, without its delimiter, into the matching
// animation type. The returned value is not a pointer.
func Decode(frame []byte) (any, error) {
	frame = bytes.TrimLeft(frame, " \t\r\n")
	if len(frame) < tagLen+1 || frame[tagLen] != ':' {
		return nil, errors.Newf(errors.ErrProtocol, "malformed frame %q", truncate(frame))
	}

	tag := string(frame[:tagLen])
	body := frame[tagLen+1:]

	switch tag {
	case TagInfo:
		var info animation.Info
		if err := unmarshal(tag, body, &info); err != nil {
			return nil, err
		}
		return info, nil
	case TagData:
		data := *animation.NewData()
		if err := unmarshal(tag, body, &data); err != nil {
			return nil, err
		}
		return data, nil
	case TagStrip:
		var strip animation.StripInfo
		if err := unmarshal(tag, body, &strip); err != nil {
			return nil, err
		}
		return strip, nil
	case TagEnd:
		var end animation.EndAnimation
		if err := unmarshal(tag, body, &end); err != nil {
			return nil, err
		}
		return end, nil
	default:
		return nil, errors.Newf(errors.ErrProtocol, "unknown message tag %q", tag).
			WithDetail("tag", tag)
	}
}

func unmarshal(tag string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, errors.ErrProtocol, "failed to decode %s message", tag).
			WithDetail("tag", tag)
	}
	return nil
}

// splitFrames is a bufio.SplitFunc cutting the stream at each delimiter.
func splitFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, delimiter); i >= 0 {
		return i + len(delimiter), data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func truncate(b []byte) string {
	const max = 32
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
