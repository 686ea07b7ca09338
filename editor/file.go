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
	"bufio"
	"fmt"
	"io"
	"os"
)

// LoadLines reads a file and splits it into lines.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines splits its input into lines ended by "\n", "\r" or "\r\n".
// A final line without a terminator is kept.
func ReadLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	lines := make([]string, 0)
	line := make([]byte, 0)
	for {
		c, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch c {
		case '\r':
			// treat "\r\n" as a single terminator
			if next, err := reader.Peek(1); err == nil && next[0] == '\n' {
				reader.ReadByte()
			}
			fallthrough
		case '\n':
			lines = append(lines, string(line))
			line = line[:0]
		default:
			line = append(line, c)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines, nil
}

// SaveLines replaces the contents of a file with lines, each followed by "\n".
func SaveLines(path string, lines []string) error {
	// os.Create truncates, so a shorter buffer leaves nothing stale behind.
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteLines(f, lines); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func WriteLines(w io.Writer, lines []string) error {
	writer := bufio.NewWriter(w)
	for _, line := range lines {
		writer.WriteString(line)
		writer.WriteByte('\n')
	}
	return writer.Flush()
}
