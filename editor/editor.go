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

// The Editor manages the editing of text in a Buffer.
// The cursor may sit one row past the last row of the buffer; typing
// there appends a new row.
type Editor struct {
	Cursor    tvim.Point // cursor position, column counted in bytes of text
	Offset    tvim.Size  // display offset
	Buffer    *Buffer    // buffer being edited
	size      tvim.Size  // size of editing area
	renderCol int        // cursor column in the render string, set by Scroll
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// ReadFile loads a file into the buffer. The buffer takes the file name
// even if the read fails, so that a new file can be saved under it.
func (e *Editor) ReadFile(path string) error {
	e.Buffer.SetFileName(path)
	lines, err := LoadLines(path)
	if err != nil {
		return err
	}
	e.Buffer.LoadLines(lines)
	e.SetCursor(tvim.Point{})
	e.Offset = tvim.Size{}
	return nil
}

func (e *Editor) WriteFile(path string) error {
	if err := SaveLines(path, e.Buffer.Lines()); err != nil {
		return err
	}
	e.Buffer.MarkClean()
	return nil
}

// Save writes the buffer to its file and returns the number of rows written.
func (e *Editor) Save() (int, error) {
	if err := e.WriteFile(e.Buffer.GetFileName()); err != nil {
		return 0, err
	}
	return e.Buffer.GetRowCount(), nil
}

func (e *Editor) GetCursor() tvim.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor tvim.Point) {
	e.Cursor = cursor
	e.keepCursorInBuffer()
}

func (e *Editor) GetOffset() tvim.Size {
	return e.Offset
}

func (e *Editor) SetSize(s tvim.Size) {
	e.size = s
}

func (e *Editor) GetBuffer() tvim.Buffer {
	return e.Buffer
}

// Scroll recomputes the render column of the cursor and the display offset.
func (e *Editor) Scroll() {
	e.renderCol = 0
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		e.renderCol = e.Buffer.RenderColumn(e.Cursor.Row, e.Cursor.Col)
	}
	e.Offset = Scroll(e.Offset, tvim.Point{Row: e.Cursor.Row, Col: e.renderCol}, e.size)
}

// GetRenderCursor returns the screen position of the cursor as of the last Scroll.
func (e *Editor) GetRenderCursor() tvim.Point {
	return tvim.Point{
		Row: e.Cursor.Row - e.Offset.Rows,
		Col: e.renderCol - e.Offset.Cols,
	}
}

func (e *Editor) MoveCursor(direction int) {
	rowCount := e.Buffer.GetRowCount()
	switch direction {
	case tvim.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			// wrap to the end of the previous row
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case tvim.MoveRight:
		if e.Cursor.Row < rowCount {
			if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
				e.Cursor.Col++
			} else {
				// wrap to the start of the next row
				e.Cursor.Row++
				e.Cursor.Col = 0
			}
		}
	case tvim.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case tvim.MoveDown:
		if e.Cursor.Row < rowCount {
			e.Cursor.Row++
		}
	}
	e.keepCursorInBuffer()
}

// keepCursorInBuffer clamps the cursor to the rows of the buffer (including
// the row after the last) and to the length of its row.
func (e *Editor) keepCursorInBuffer() {
	e.Cursor.Row = clipToRange(e.Cursor.Row, 0, e.Buffer.GetRowCount())
	e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.Buffer.GetRowLength(e.Cursor.Row))
}

// These editor primitives are used in insert mode.

func (e *Editor) InsertChar(c byte) {
	// if the cursor is past the last row, add a row to write into
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.Buffer.AppendRow(nil)
	}
	if e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c) {
		e.Cursor.Col++
	}
}

// InsertRow breaks the current row at the cursor and moves the cursor to
// the start of the new row below.
func (e *Editor) InsertRow() {
	rowCount := e.Buffer.GetRowCount()
	if e.Cursor.Col == 0 || e.Cursor.Row >= rowCount {
		// at the start of a row, push it down with an empty row above it
		e.Buffer.InsertRow(min(e.Cursor.Row, rowCount), nil)
	} else {
		e.Buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// BackspaceChar deletes the character before the cursor. At the start of
// a row it joins the row to the end of the previous one.
func (e *Editor) BackspaceChar() {
	e.keepCursorInBuffer()
	if e.Cursor.Col > 0 {
		if _, ok := e.Buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col-1); ok {
			e.Cursor.Col--
		}
		return
	}
	if e.Cursor.Row == 0 {
		return
	}
	previous := e.Cursor.Row - 1
	joinCol := e.Buffer.GetRowLength(previous)
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		e.Buffer.JoinRow(previous, []byte(e.Buffer.TextAfter(e.Cursor.Row, 0)))
		e.Buffer.DeleteRow(e.Cursor.Row)
	}
	e.Cursor.Row = previous
	e.Cursor.Col = joinCol
}

// DeleteCharAtCursor deletes the character under the cursor.
// At the end of a row it joins the next row onto this one.
func (e *Editor) DeleteCharAtCursor() {
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		return
	}
	cursor := e.Cursor
	e.MoveCursor(tvim.MoveRight)
	// nothing follows the end of the last row
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.SetCursor(cursor)
		return
	}
	e.BackspaceChar()
}

func (e *Editor) InsertLineAboveCursor() {
	e.keepCursorInBuffer()
	e.Buffer.InsertRow(e.Cursor.Row, nil)
	e.Cursor.Col = 0
}

func (e *Editor) InsertLineBelowCursor() {
	e.keepCursorInBuffer()
	at := min(e.Cursor.Row+1, e.Buffer.GetRowCount())
	e.Buffer.InsertRow(at, nil)
	e.Cursor.Row = at
	e.Cursor.Col = 0
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
