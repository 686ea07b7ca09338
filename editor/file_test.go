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
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		input string
		lines []string
	}{
		{"", []string{}},
		{"one\ntwo\n", []string{"one", "two"}},
		{"one\ntwo", []string{"one", "two"}},
		{"one\r\ntwo\r\n", []string{"one", "two"}},
		{"one\rtwo\r", []string{"one", "two"}},
		{"\n\n", []string{"", ""}},
		{"a\tb\n", []string{"a\tb"}},
	}
	for _, test := range tests {
		lines, err := ReadLines(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("ReadLines(%q) failed: %+v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(lines, test.lines) {
			t.Errorf("Unexpected lines for %q: %q", test.input, lines)
		}
	}
}

func TestWriteLines(t *testing.T) {
	var b bytes.Buffer
	if err := WriteLines(&b, []string{"one", "", "two"}); err != nil {
		t.Fatalf("WriteLines failed: %+v", err)
	}
	if b.String() != "one\n\ntwo\n" {
		t.Errorf("Unexpected output: %q", b.String())
	}
}
