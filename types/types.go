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

// Package types holds the values and interfaces shared by the tvim packages.
package types

import "time"

const Version = "0.0.1"

// Tabs are drawn to the next multiple of TabStop.
const TabStop = 4

// EscapeTimeout is how long the key decoder waits for the rest of an
// escape sequence before reporting a bare Escape.
const EscapeTimeout = 100 * time.Millisecond

// Editor modes
type Mode int

const (
	ModeNormal Mode = iota
	ModeVisual
	ModeInsert
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeVisual:
		return "Visual"
	case ModeInsert:
		return "Insert"
	case ModeCommand:
		return "Command"
	default:
		return "Unknown"
	}
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Key identifies keys that arrive as escape sequences.
// Everything else is delivered as a plain byte in Event.Ch.
type Key int

const (
	KeyNone Key = iota
	KeyEsc
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyDelete
)

// Bytes with special meaning to the editor.
const (
	ByteEscape    = 0x1b
	ByteEnter     = '\r'
	ByteBackspace = 127
)

// CtrlKey returns the byte sent when c is typed with the control key held.
func CtrlKey(c byte) byte {
	return c & 0x1f
}

// An Event is one logical key press.
type Event struct {
	Key Key  // KeyNone for plain bytes
	Ch  byte // the byte read when Key is KeyNone
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Editor interface {
	GetCursor() Point
	GetRenderCursor() Point
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer

	Scroll()
	MoveCursor(direction int)
	InsertChar(c byte)
	InsertRow()
	BackspaceChar()
	DeleteCharAtCursor()
	InsertLineAboveCursor()
	InsertLineBelowCursor()
	Save() (int, error)
}

type Buffer interface {
	GetRowCount() int
	GetRowLength(row int) int
	GetRender(row int) string
	GetFileName() string
	IsDirty() bool
}

type Commander interface {
	GetMode() Mode
	GetMessage() string
}
