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
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/timburks/tvim/commander"
	"github.com/timburks/tvim/editor"
	tvim "github.com/timburks/tvim/types"
)

func setup(lines ...string) (*bytes.Buffer, *Screen, *editor.Editor, *commander.Commander) {
	var out bytes.Buffer
	s := NewScreen(&out, script())
	e := editor.NewEditor()
	e.Buffer.LoadLines(lines)
	c := commander.NewCommander(e)
	return &out, s, e, c
}

func TestRenderFrame(t *testing.T) {
	out, s, e, c := setup("hello", "\tx")
	e.Buffer.SetFileName("a.txt")
	c.ProcessEvent(&tvim.Event{Key: tvim.KeyEsc})
	if err := s.Render(e, c, tvim.Size{Rows: 5, Cols: 20}); err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	expected := hideCursor + cursorHome +
		"hello" + clearLine + "\r\n" +
		"    x" + clearLine + "\r\n" +
		"~" + clearLine + "\r\n" +
		"~" + clearLine + "\r\n" +
		invertColors + "Normal a.txt" + "   " + " 1/2 " + resetColors +
		"\x1b[1;1H" + showCursor
	if frame := out.String(); frame != expected {
		t.Errorf("Unexpected frame:\n%q\n%q", frame, expected)
	}
}

func TestRenderSingleRow(t *testing.T) {
	out, s, e, c := setup("hello", "world")
	e.Cursor = tvim.Point{Row: 1, Col: 2}
	if err := s.Render(e, c, tvim.Size{Rows: 1, Cols: 20}); err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	expected := hideCursor + cursorHome + "world" + clearLine + "\x1b[1;3H" + showCursor
	if frame := out.String(); frame != expected {
		t.Errorf("Unexpected frame:\n%q\n%q", frame, expected)
	}
}

func TestRenderWelcome(t *testing.T) {
	out, s, e, c := setup()
	if err := s.Render(e, c, tvim.Size{Rows: 10, Cols: 40}); err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	rows := strings.Split(out.String(), "\r\n")
	welcome := "~     tvim editor -- version " + tvim.Version + clearLine
	if rows[3] != welcome {
		t.Errorf("Unexpected welcome row: %q", rows[3])
	}
	if !strings.Contains(out.String(), "[No Name]") {
		t.Errorf("Missing file name placeholder")
	}
}

func TestRenderNoWelcomeWithRows(t *testing.T) {
	out, s, e, c := setup("")
	if err := s.Render(e, c, tvim.Size{Rows: 10, Cols: 40}); err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	if strings.Contains(out.String(), "version") {
		t.Errorf("Unexpected welcome in non-empty buffer")
	}
}

func TestRenderScrolled(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	out, s, e, c := setup(lines...)
	e.Cursor = tvim.Point{Row: 25, Col: 2}
	if err := s.Render(e, c, tvim.Size{Rows: 11, Cols: 40}); err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	if offset := e.GetOffset(); offset.Rows != 16 {
		t.Errorf("Unexpected row offset: %d", offset.Rows)
	}
	frame := out.String()
	if !strings.HasPrefix(frame, hideCursor+cursorHome+"line 16"+clearLine) {
		t.Errorf("Unexpected first row: %q", frame[:40])
	}
	if !strings.HasSuffix(frame, "\x1b[10;3H"+showCursor) {
		t.Errorf("Unexpected cursor position in frame")
	}
	if !strings.Contains(frame, " 26/30 "+resetColors) {
		t.Errorf("Unexpected status line")
	}
}

func TestRenderClipsColumns(t *testing.T) {
	out, s, e, c := setup("abcdefghijklmnopqrstuvwxyz")
	e.Cursor = tvim.Point{Row: 0, Col: 20}
	if err := s.Render(e, c, tvim.Size{Rows: 3, Cols: 10}); err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	rows := strings.Split(out.String(), "\r\n")
	if rows[0] != hideCursor+cursorHome+"lmnopqrstu"+clearLine {
		t.Errorf("Unexpected clipped row: %q", rows[0])
	}
	if !strings.HasSuffix(out.String(), "\x1b[1;10H"+showCursor) {
		t.Errorf("Unexpected cursor position in frame")
	}
}

func TestStatusLine(t *testing.T) {
	_, s, e, c := setup("abc")
	e.Buffer.SetFileName("notes.txt")
	c.ProcessEvent(&tvim.Event{Ch: 'i'})
	c.ProcessEvent(&tvim.Event{Ch: 'z'})
	s.size = tvim.Size{Rows: 3, Cols: 30}
	ab := NewAppendBuffer()
	s.RenderStatusLine(ab, e, c)
	expected := invertColors + "Insert notes.txt [+]" + "     " + " 1/1 " + resetColors
	if status := string(ab.Bytes()); status != expected {
		t.Errorf("Unexpected status line: %q", status)
	}

	c.ProcessEvent(&tvim.Event{Key: tvim.KeyEsc})
	c.ProcessEvent(&tvim.Event{Ch: ':'})
	ab.Reset()
	s.RenderStatusLine(ab, e, c)
	if status := string(ab.Bytes()); !strings.HasPrefix(status, invertColors+": notes.txt") {
		t.Errorf("Unexpected command status line: %q", status)
	}

	// a narrow screen truncates the text but keeps the position
	s.size.Cols = 8
	ab.Reset()
	s.RenderStatusLine(ab, e, c)
	if status := string(ab.Bytes()); status != invertColors+": n"+" 1/1 "+resetColors {
		t.Errorf("Unexpected narrow status line: %q", status)
	}
}

func TestClose(t *testing.T) {
	out, s, _, _ := setup()
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %+v", err)
	}
	if out.String() != clearScreen+cursorHome {
		t.Errorf("Unexpected output on close: %q", out.String())
	}
}

func TestGetNextEvent(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, script("\x1b[A"))
	event, err := s.GetNextEvent()
	if err != nil {
		t.Fatalf("GetNextEvent failed: %+v", err)
	}
	if event.Key != tvim.KeyArrowUp {
		t.Errorf("Unexpected event: %+v", *event)
	}
}
