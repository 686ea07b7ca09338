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
	"io"
	"sync"
)

const initialCapacity = 8

var appendBufferPool = sync.Pool{
	New: func() any {
		return NewAppendBuffer()
	},
}

// AcquireAppendBuffer gets an empty AppendBuffer for a frame.
func AcquireAppendBuffer() *AppendBuffer {
	ab := appendBufferPool.Get().(*AppendBuffer)
	ab.Reset()
	return ab
}

// ReleaseAppendBuffer returns a buffer when its frame has been written.
func ReleaseAppendBuffer(ab *AppendBuffer) {
	if ab == nil {
		return
	}
	ab.Reset()
	appendBufferPool.Put(ab)
}

// An AppendBuffer collects the bytes of a frame so that they can be
// written to the terminal at once. Its capacity doubles when it fills.
type AppendBuffer struct {
	buf []byte
}

func NewAppendBuffer() *AppendBuffer {
	return &AppendBuffer{buf: make([]byte, 0, initialCapacity)}
}

func (ab *AppendBuffer) grow(n int) {
	need := len(ab.buf) + n
	if need <= cap(ab.buf) {
		return
	}
	capacity := max(cap(ab.buf), initialCapacity)
	for capacity < need {
		capacity *= 2
	}
	buf := make([]byte, len(ab.buf), capacity)
	copy(buf, ab.buf)
	ab.buf = buf
}

func (ab *AppendBuffer) Append(p []byte) {
	ab.grow(len(p))
	ab.buf = append(ab.buf, p...)
}

func (ab *AppendBuffer) AppendString(s string) {
	ab.grow(len(s))
	ab.buf = append(ab.buf, s...)
}

// Write makes an AppendBuffer usable with fmt.Fprintf.
func (ab *AppendBuffer) Write(p []byte) (int, error) {
	ab.Append(p)
	return len(p), nil
}

func (ab *AppendBuffer) Bytes() []byte {
	return ab.buf
}

func (ab *AppendBuffer) Len() int {
	return len(ab.buf)
}

func (ab *AppendBuffer) Cap() int {
	return cap(ab.buf)
}

func (ab *AppendBuffer) Reset() {
	ab.buf = ab.buf[:0]
}

// WriteTo writes the contents of the buffer with a single call to w.Write.
func (ab *AppendBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(ab.buf)
	return int64(n), err
}
