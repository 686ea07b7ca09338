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
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	tvim "github.com/timburks/tvim/types"
)

// VT100 sequences used to draw a frame.
const (
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	cursorHome   = "\x1b[H"
	clearScreen  = "\x1b[2J"
	clearLine    = "\x1b[K"
	invertColors = "\x1b[7m"
	resetColors  = "\x1b[m"
)

// The Screen draws the state of an Editor and reads keys from the terminal.
type Screen struct {
	out  io.Writer
	keys *KeyDecoder
	size tvim.Size // screen size
}

func NewScreen(out io.Writer, in ByteReader) *Screen {
	return &Screen{out: out, keys: NewKeyDecoder(in)}
}

// Close clears the screen and leaves the cursor at the top left.
func (s *Screen) Close() error {
	_, err := io.WriteString(s.out, clearScreen+cursorHome)
	return err
}

func (s *Screen) GetNextEvent() (*tvim.Event, error) {
	return s.keys.ReadKey()
}

// Render draws one frame. The last row of the screen is the status line,
// unless the screen has only one row; the rows above it show the buffer.
func (s *Screen) Render(e tvim.Editor, c tvim.Commander, size tvim.Size) error {
	s.size = size

	// the last row is the status line if there is room for it
	statusLine := size.Rows > 1
	editSize := size
	if statusLine {
		editSize.Rows = size.Rows - 1
	} else {
		editSize.Rows = 1
	}
	e.SetSize(editSize)
	e.Scroll()

	ab := AcquireAppendBuffer()
	defer ReleaseAppendBuffer(ab)

	ab.AppendString(hideCursor)
	ab.AppendString(cursorHome)
	s.RenderRows(ab, e, editSize)
	if statusLine {
		ab.AppendString("\r\n")
		s.RenderStatusLine(ab, e, c)
	}
	cursor := e.GetRenderCursor()
	fmt.Fprintf(ab, "\x1b[%d;%dH", cursor.Row+1, cursor.Col+1)
	ab.AppendString(showCursor)

	_, err := ab.WriteTo(s.out)
	return err
}

func (s *Screen) RenderRows(ab *AppendBuffer, e tvim.Editor, size tvim.Size) {
	b := e.GetBuffer()
	offset := e.GetOffset()
	for y := 0; y < size.Rows; y++ {
		if y > 0 {
			ab.AppendString("\r\n")
		}
		row := y + offset.Rows
		if row >= b.GetRowCount() {
			if b.GetRowCount() == 0 && y == size.Rows/3 {
				s.renderWelcome(ab, size.Cols)
			} else {
				ab.AppendString("~")
			}
		} else {
			line := b.GetRender(row)
			if offset.Cols < len(line) {
				line = line[offset.Cols:]
			} else {
				line = ""
			}
			// truncate line to fit screen
			if len(line) > size.Cols {
				line = line[0:size.Cols]
			}
			ab.AppendString(line)
		}
		ab.AppendString(clearLine)
	}
}

func (s *Screen) renderWelcome(ab *AppendBuffer, cols int) {
	welcome := runewidth.Truncate("tvim editor -- version "+tvim.Version, cols, "")
	padding := (cols - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		ab.AppendString("~")
		padding--
	}
	ab.AppendString(strings.Repeat(" ", max(padding, 0)))
	ab.AppendString(welcome)
}

// RenderStatusLine draws the mode, file name and cursor position in inverse video.
func (s *Screen) RenderStatusLine(ab *AppendBuffer, e tvim.Editor, c tvim.Commander) {
	width := s.size.Cols
	b := e.GetBuffer()

	var text string
	if c.GetMode() == tvim.ModeCommand {
		text = ":"
	} else {
		text = c.GetMode().String()
	}
	name := b.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	text += " " + name
	if b.IsDirty() {
		text += " [+]"
	}
	if message := c.GetMessage(); message != "" {
		text += "  " + message
	}
	finalText := fmt.Sprintf(" %d/%d ", e.GetCursor().Row+1, b.GetRowCount())

	finalText = runewidth.Truncate(finalText, width, "")
	text = runewidth.Truncate(text, width-runewidth.StringWidth(finalText), "")
	padding := width - runewidth.StringWidth(text) - runewidth.StringWidth(finalText)

	ab.AppendString(invertColors)
	ab.AppendString(text)
	ab.AppendString(strings.Repeat(" ", max(padding, 0)))
	ab.AppendString(finalText)
	ab.AppendString(resetColors)
}
