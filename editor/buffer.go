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

// A Buffer holds the rows of the file being edited.
// Row indices are line numbers; they stay contiguous across inserts and deletes.
type Buffer struct {
	rows     []*Row
	fileName string
	dirty    int // number of changes since the last load or save
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) IsDirty() bool {
	return b.dirty > 0
}

func (b *Buffer) MarkClean() {
	b.dirty = 0
}

// LoadLines replaces the contents of the buffer.
func (b *Buffer) LoadLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.AppendRow([]byte(line))
	}
	b.dirty = 0
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.Text()
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) validRow(row int) bool {
	return row >= 0 && row < len(b.rows)
}

func (b *Buffer) GetRowLength(row int) int {
	if b.validRow(row) {
		return b.rows[row].Length()
	}
	return 0
}

// GetRender returns the tab-expanded text of a row.
func (b *Buffer) GetRender(row int) string {
	if b.validRow(row) {
		return b.rows[row].Render()
	}
	return ""
}

// RenderColumn converts a text column in a row to a render column.
func (b *Buffer) RenderColumn(row, col int) int {
	if b.validRow(row) {
		return b.rows[row].RenderColumn(col)
	}
	return 0
}

func (b *Buffer) TextAfter(row, col int) string {
	if b.validRow(row) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) AppendRow(text []byte) {
	b.rows = append(b.rows, NewRow(text))
}

// InsertRow inserts a row at index at, moving the rows below it down.
// It returns false and does nothing if at is outside [0, row count].
func (b *Buffer) InsertRow(at int, text []byte) bool {
	if at < 0 || at > len(b.rows) {
		return false
	}
	// add a slot at the end and move rows down to make room
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = NewRow(text)
	b.dirty++
	return true
}

// DeleteRow removes the row at index at, moving the rows below it up.
func (b *Buffer) DeleteRow(at int) bool {
	if !b.validRow(at) {
		return false
	}
	last := len(b.rows) - 1
	copy(b.rows[at:], b.rows[at+1:])
	// drop the stale reference left in the vacated slot
	b.rows[last] = nil
	b.rows = b.rows[:last]
	b.dirty++
	return true
}

// JoinRow appends text to the end of a row.
func (b *Buffer) JoinRow(at int, text []byte) bool {
	if !b.validRow(at) {
		return false
	}
	b.rows[at].Join(text)
	b.dirty++
	return true
}

// SplitRow truncates a row at col and inserts the remainder as a new row below it.
func (b *Buffer) SplitRow(row, col int) bool {
	if !b.validRow(row) {
		return false
	}
	after := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = after
	b.dirty++
	return true
}

func (b *Buffer) InsertCharacter(row, col int, c byte) bool {
	if !b.validRow(row) {
		return false
	}
	b.rows[row].InsertChar(col, c)
	b.dirty++
	return true
}

// DeleteCharacter deletes the character at col and returns it.
func (b *Buffer) DeleteCharacter(row, col int) (byte, bool) {
	if !b.validRow(row) || col < 0 || col >= b.rows[row].Length() {
		return 0, false
	}
	c := b.rows[row].DeleteChar(col)
	b.dirty++
	return c, true
}
