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

// Package terminal puts the controlling terminal into raw mode and
// provides the byte-level input and output that the screen needs.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tvim "github.com/timburks/tvim/types"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

// A Terminal is the raw-mode session on stdin and stdout.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
}

// Open puts stdin into raw mode. Close restores it.
func Open() (*Terminal, error) {
	return OpenFiles(os.Stdin, os.Stdout)
}

func OpenFiles(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin: %w", ErrNotTerminal)
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	return &Terminal{in: in, out: out, oldState: oldState}, nil
}

// Close restores the terminal settings saved by Open. It is safe to call
// more than once.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

func (t *Terminal) GetWindowSize() (tvim.Size, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return tvim.Size{}, fmt.Errorf("getting window size: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return tvim.Size{}, fmt.Errorf("getting window size: %dx%d", cols, rows)
	}
	return tvim.Size{Rows: rows, Cols: cols}, nil
}

// ReadByteTimeout waits for one byte of input. A negative timeout waits
// until input arrives.
func (t *Terminal) ReadByteTimeout(timeout time.Duration) (byte, bool, error) {
	fd := int(t.in.Fd())
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			// window size changes interrupt the poll
			if ms < 0 {
				continue
			}
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("polling stdin: %w", err)
		}
		if n == 0 {
			return 0, false, nil
		}
		break
	}
	var buf [1]byte
	for {
		n, err := unix.Read(fd, buf[:])
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil {
			return 0, false, fmt.Errorf("reading stdin: %w", err)
		}
		if n == 0 {
			return 0, false, io.EOF
		}
		return buf[0], true, nil
	}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
