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
package terminal

import (
	"errors"
	"os"
	"testing"
)

func TestOpenRequiresTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %+v", err)
	}
	defer r.Close()
	defer w.Close()
	if _, err := OpenFiles(r, w); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Unexpected error: %+v", err)
	}
}

func TestReadByteTimeout(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %+v", err)
	}
	defer r.Close()
	defer w.Close()
	tm := &Terminal{in: r, out: w}

	if _, ok, err := tm.ReadByteTimeout(0); ok || err != nil {
		t.Errorf("Unexpected read from empty pipe: %v %+v", ok, err)
	}
	w.Write([]byte("x"))
	c, ok, err := tm.ReadByteTimeout(-1)
	if err != nil || !ok || c != 'x' {
		t.Errorf("Unexpected read: %q %v %+v", c, ok, err)
	}
	if err := tm.Close(); err != nil {
		t.Errorf("Unexpected error closing unopened terminal: %+v", err)
	}
}
