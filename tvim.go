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
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/tvim/commander"
	"github.com/timburks/tvim/editor"
	"github.com/timburks/tvim/screen"
	"github.com/timburks/tvim/terminal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: tvim file")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "tvim: %v\n", err)
		os.Exit(99)
	}
}

func run(filename string) (err error) {
	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if err = e.ReadFile(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	// Open a log file; the screen owns stdout while we run.
	f := openLog()
	defer f.Close()
	log.SetOutput(f)

	t, err := terminal.Open()
	if err != nil {
		return err
	}
	s := screen.NewScreen(t, t)

	// Restore the terminal however we exit.
	defer func() {
		s.Close()
		if cerr := t.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	// Run the main event loop.
	for c.IsRunning() {
		size, err := t.GetWindowSize()
		if err != nil {
			return err
		}
		if err = s.Render(e, c, size); err != nil {
			return err
		}
		event, err := s.GetNextEvent()
		if err != nil {
			return err
		}
		if err = c.ProcessEvent(event); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func openLog() io.WriteCloser {
	home, err := os.UserHomeDir()
	if err != nil {
		return nopCloser{io.Discard}
	}
	f, err := os.OpenFile(filepath.Join(home, ".tvimlog"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nopCloser{io.Discard}
	}
	return f
}
