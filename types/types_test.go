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
package types

import "testing"

func TestModeNames(t *testing.T) {
	names := map[Mode]string{
		ModeNormal:  "Normal",
		ModeVisual:  "Visual",
		ModeInsert:  "Insert",
		ModeCommand: "Command",
		Mode(42):    "Unknown",
	}
	for mode, name := range names {
		if s := mode.String(); s != name {
			t.Errorf("Unexpected name for mode %d: %s", int(mode), s)
		}
	}
}

func TestCtrlKey(t *testing.T) {
	if c := CtrlKey('q'); c != 17 {
		t.Errorf("Unexpected Ctrl-Q: %d", c)
	}
	if c := CtrlKey('s'); c != 19 {
		t.Errorf("Unexpected Ctrl-S: %d", c)
	}
}
