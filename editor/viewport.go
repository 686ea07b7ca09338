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

// Scroll returns the display offset that keeps cursor onscreen.
// The cursor column is a render column. The offset only moves as far as
// needed to bring the cursor back into view.
func Scroll(offset tvim.Size, cursor tvim.Point, size tvim.Size) tvim.Size {
	rows := max(size.Rows, 1)
	cols := max(size.Cols, 1)
	if cursor.Row < offset.Rows {
		// scroll up
		offset.Rows = cursor.Row
	}
	if cursor.Row >= offset.Rows+rows {
		// scroll down
		offset.Rows = cursor.Row - rows + 1
	}
	if cursor.Col < offset.Cols {
		// scroll left
		offset.Cols = cursor.Col
	}
	if cursor.Col >= offset.Cols+cols {
		// scroll right
		offset.Cols = cursor.Col - cols + 1
	}
	return offset
}
