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
package editor

import (
	tvim "github.com/timburks/tvim/types"
)

// A row of text in the editor.
// Text holds the bytes of the line as they are stored in the file;
// render holds the same line with tabs expanded for display.
type Row struct {
	text   []byte
	render []byte
}

func NewRow(text []byte) *Row {
	r := &Row{}
	r.setText(append([]byte{}, text...))
	return r
}

// Every change to the text goes through setText so that the render
// string never lags behind it.
func (r *Row) setText(text []byte) {
	r.text = text
	r.render = expandTabs(text)
}

// nextRenderColumn returns the render column that follows c when c is
// drawn starting at render column rx.
func nextRenderColumn(rx int, c byte) int {
	if c == '\t' {
		return rx + tvim.TabStop - rx%tvim.TabStop
	}
	return rx + 1
}

func expandTabs(text []byte) []byte {
	render := make([]byte, 0, len(text))
	for _, c := range text {
		if c == '\t' {
			next := nextRenderColumn(len(render), c)
			for len(render) < next {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	return render
}

func (r *Row) Text() string {
	return string(r.text)
}

func (r *Row) Render() string {
	return string(r.render)
}

func (r *Row) Length() int {
	return len(r.text)
}

func (r *Row) RenderLength() int {
	return len(r.render)
}

// RenderColumn converts a column in the text to a column in the render string.
func (r *Row) RenderColumn(col int) int {
	rx := 0
	for j := 0; j < col && j < len(r.text); j++ {
		rx = nextRenderColumn(rx, r.text[j])
	}
	return rx
}

func (r *Row) InsertChar(col int, c byte) {
	if col < 0 || col > len(r.text) {
		col = len(r.text)
	}
	line := make([]byte, 0, len(r.text)+1)
	line = append(line, r.text[0:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) byte {
	if col < 0 || col >= len(r.text) {
		return 0
	}
	c := r.text[col]
	line := make([]byte, 0, len(r.text)-1)
	line = append(line, r.text[0:col]...)
	line = append(line, r.text[col+1:]...)
	r.setText(line)
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col < len(r.text) {
		after := NewRow(r.text[col:])
		r.setText(append([]byte{}, r.text[0:col]...))
		return after
	}
	return NewRow(nil)
}

// joins rows by appending text to the current row
func (r *Row) Join(text []byte) {
	line := make([]byte, 0, len(r.text)+len(text))
	line = append(line, r.text...)
	line = append(line, text...)
	r.setText(line)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < 0 {
		col = 0
	}
	if col < len(r.text) {
		return string(r.text[col:])
	}
	return ""
}
