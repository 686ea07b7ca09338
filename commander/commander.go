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

// Package commander converts key events into commands for the editor.
// Each mode has its own key handler; the commander holds the current mode
// and switches modes only when a handler asks it to.
package commander

import (
	"fmt"

	tvim "github.com/timburks/tvim/types"
)

// A keyHandler processes one key in one mode.
type keyHandler func(c *Commander, event *tvim.Event) error

// Every mode has exactly one handler.
var handlers = map[tvim.Mode]keyHandler{
	tvim.ModeNormal:  (*Commander).ProcessKeyNormalMode,
	tvim.ModeInsert:  (*Commander).ProcessKeyInsertMode,
	tvim.ModeVisual:  (*Commander).ProcessKeyVisualMode,
	tvim.ModeCommand: (*Commander).ProcessKeyCommandMode,
}

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  tvim.Editor
	mode    tvim.Mode // editor mode
	running bool      // false after the quit key
	message string    // status message
}

func NewCommander(e tvim.Editor) *Commander {
	return &Commander{
		editor:  e,
		mode:    tvim.ModeNormal,
		running: true,
		message: "HELP: Ctrl-S = save | Ctrl-Q = quit",
	}
}

func (c *Commander) GetMode() tvim.Mode {
	return c.mode
}

func (c *Commander) SetMode(m tvim.Mode) {
	c.mode = m
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) ProcessEvent(event *tvim.Event) error {
	if event == nil {
		return nil
	}
	c.message = ""
	return c.ProcessKey(event)
}

// ProcessKey handles the keys that behave the same in every mode and
// passes everything else to the handler for the current mode.
func (c *Commander) ProcessKey(event *tvim.Event) error {
	if event.Key == tvim.KeyNone && event.Ch == tvim.CtrlKey('q') {
		c.running = false
		return nil
	}
	if direction, ok := arrowDirection(event.Key); ok {
		c.editor.MoveCursor(direction)
		return nil
	}
	handler, ok := handlers[c.mode]
	if !ok {
		return fmt.Errorf("no key handler for mode %d", c.mode)
	}
	return handler(c, event)
}

func arrowDirection(key tvim.Key) (int, bool) {
	switch key {
	case tvim.KeyArrowUp:
		return tvim.MoveUp, true
	case tvim.KeyArrowDown:
		return tvim.MoveDown, true
	case tvim.KeyArrowLeft:
		return tvim.MoveLeft, true
	case tvim.KeyArrowRight:
		return tvim.MoveRight, true
	}
	return 0, false
}

func (c *Commander) ProcessKeyNormalMode(event *tvim.Event) error {
	e := c.editor

	switch event.Key {
	case tvim.KeyEsc:
		return nil
	case tvim.KeyDelete:
		e.DeleteCharAtCursor()
		return nil
	}
	if event.Key != tvim.KeyNone {
		return nil
	}
	switch event.Ch {
	//
	// cursor movement
	//
	case 'h':
		e.MoveCursor(tvim.MoveLeft)
	case 'j':
		e.MoveCursor(tvim.MoveDown)
	case 'k':
		e.MoveCursor(tvim.MoveUp)
	case 'l':
		e.MoveCursor(tvim.MoveRight)
	//
	// mode changes
	//
	case 'i':
		c.mode = tvim.ModeInsert
	case 'o':
		e.InsertLineBelowCursor()
		c.mode = tvim.ModeInsert
	case 'O':
		e.InsertLineAboveCursor()
		c.mode = tvim.ModeInsert
	case 'v':
		c.mode = tvim.ModeVisual
	case ':':
		c.mode = tvim.ModeCommand
	case tvim.CtrlKey('s'):
		return c.save()
	}
	return nil
}

func (c *Commander) ProcessKeyInsertMode(event *tvim.Event) error {
	e := c.editor

	switch event.Key {
	case tvim.KeyNone:
	case tvim.KeyEsc:
		c.mode = tvim.ModeNormal
		return nil
	case tvim.KeyDelete:
		e.DeleteCharAtCursor()
		return nil
	default:
		return nil
	}
	switch event.Ch {
	case tvim.ByteBackspace:
		e.BackspaceChar()
	case tvim.ByteEnter:
		e.InsertRow()
	case tvim.CtrlKey('l'):
		c.mode = tvim.ModeNormal
	default:
		e.InsertChar(event.Ch)
	}
	return nil
}

// Visual mode has no selection; it only moves the cursor and deletes.
func (c *Commander) ProcessKeyVisualMode(event *tvim.Event) error {
	switch event.Key {
	case tvim.KeyEsc:
		c.mode = tvim.ModeNormal
	case tvim.KeyDelete:
		c.editor.DeleteCharAtCursor()
	}
	return nil
}

// Command mode is reserved for a command line; it only knows how to leave.
func (c *Commander) ProcessKeyCommandMode(event *tvim.Event) error {
	if event.Key == tvim.KeyEsc {
		c.mode = tvim.ModeNormal
	}
	return nil
}

func (c *Commander) save() error {
	name := c.editor.GetBuffer().GetFileName()
	n, err := c.editor.Save()
	if err != nil {
		c.message = fmt.Sprintf("Can't save! %v", err)
		return err
	}
	c.message = fmt.Sprintf("\"%s\" %dL written", name, n)
	return nil
}
