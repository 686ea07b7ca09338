//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"time"

	tvim "github.com/timburks/tvim/types"
)

// A ByteReader reads single bytes of terminal input.
// ReadByteTimeout returns ok == false if no byte arrived before the timeout;
// a negative timeout waits indefinitely.
type ByteReader interface {
	ReadByteTimeout(timeout time.Duration) (c byte, ok bool, err error)
}

// A KeyDecoder turns terminal input into key events.
type KeyDecoder struct {
	in      ByteReader
	timeout time.Duration
}

func NewKeyDecoder(in ByteReader) *KeyDecoder {
	return &KeyDecoder{in: in, timeout: tvim.EscapeTimeout}
}

// ReadKey blocks until a key is pressed.
func (d *KeyDecoder) ReadKey() (*tvim.Event, error) {
	var c byte
	for {
		b, ok, err := d.in.ReadByteTimeout(-1)
		if err != nil {
			return nil, err
		}
		if ok {
			c = b
			break
		}
	}
	if c != tvim.ByteEscape {
		return &tvim.Event{Ch: c}, nil
	}
	return d.readEscapeSequence()
}

// readEscapeSequence decodes what follows an escape byte. Anything it
// does not recognize, including a sequence that stops early, is reported
// as a plain Escape.
func (d *KeyDecoder) readEscapeSequence() (*tvim.Event, error) {
	escape := &tvim.Event{Key: tvim.KeyEsc}

	var seq [3]byte
	for i := 0; i < 2; i++ {
		b, ok, err := d.in.ReadByteTimeout(d.timeout)
		if err != nil {
			return nil, err
		}
		if !ok {
			return escape, nil
		}
		seq[i] = b
	}
	if seq[0] != '[' {
		return escape, nil
	}
	if seq[1] >= '0' && seq[1] <= '9' {
		b, ok, err := d.in.ReadByteTimeout(d.timeout)
		if err != nil {
			return nil, err
		}
		if !ok {
			return escape, nil
		}
		seq[2] = b
		if seq[2] == '~' && seq[1] == '3' {
			return &tvim.Event{Key: tvim.KeyDelete}, nil
		}
		return escape, nil
	}
	switch seq[1] {
	case 'A':
		return &tvim.Event{Key: tvim.KeyArrowUp}, nil
	case 'B':
		return &tvim.Event{Key: tvim.KeyArrowDown}, nil
	case 'C':
		return &tvim.Event{Key: tvim.KeyArrowRight}, nil
	case 'D':
		return &tvim.Event{Key: tvim.KeyArrowLeft}, nil
	}
	return escape, nil
}
