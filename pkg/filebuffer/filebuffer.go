package filebuffer

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/alecthomas/participle/lexer"
)

// FileBuffer holds the text of a document and indexes its line endings, so
// that line/column positions and byte offsets can be converted both ways.
type FileBuffer struct {
	filename string
	buf      bytes.Buffer
	offset   int
	offsets  []int
	mu       sync.Mutex
}

func New(filename string) *FileBuffer {
	return &FileBuffer{filename: filename}
}

// NewString returns a buffer holding text.
func NewString(filename, text string) *FileBuffer {
	fb := New(filename)
	_, _ = io.WriteString(fb, text)
	return fb
}

func (fb *FileBuffer) Filename() string {
	return fb.filename
}

// Len returns the number of line endings.
func (fb *FileBuffer) Len() int {
	return len(fb.offsets)
}

func (fb *FileBuffer) Bytes() []byte {
	return fb.buf.Bytes()
}

func (fb *FileBuffer) String() string {
	return fb.buf.String()
}

func (fb *FileBuffer) Write(p []byte) (n int, err error) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	n, err = fb.buf.Write(p)

	start := 0
	index := bytes.IndexByte(p[:n], byte('\n'))
	for index >= 0 {
		fb.offsets = append(fb.offsets, fb.offset+start+index)
		start += index + 1
		index = bytes.IndexByte(p[start:n], byte('\n'))
	}
	fb.offset += n

	return n, err
}

// PositionAt returns the lexer position of a byte offset.
func (fb *FileBuffer) PositionAt(offset int) lexer.Position {
	index := fb.findNearestLineIndex(offset)
	start := 0
	if index >= 0 {
		start = fb.offsets[index] + 1
	}
	return lexer.Position{
		Filename: fb.filename,
		Offset:   offset,
		Line:     index + 2,
		Column:   offset - start + 1,
	}
}

// Offset returns the byte offset of a 0-based line and character, clamped to
// the end of that line.
func (fb *FileBuffer) Offset(line, character int) int {
	if line < 0 {
		return 0
	}
	if line > len(fb.offsets) {
		return fb.buf.Len()
	}

	start := fb.lineStart(line)
	end := fb.buf.Len()
	if line < len(fb.offsets) {
		end = fb.offsets[line]
	}

	offset := start + character
	if character < 0 {
		offset = start
	}
	if offset > end {
		offset = end
	}
	return offset
}

// Line returns the contents of a 0-based line without its line ending.
func (fb *FileBuffer) Line(ln int) ([]byte, error) {
	if ln < 0 || ln > len(fb.offsets) {
		return nil, fmt.Errorf("line %d outside of offsets", ln)
	}

	end := fb.buf.Len()
	if ln < len(fb.offsets) {
		end = fb.offsets[ln]
	}
	return fb.read(fb.lineStart(ln), end)
}

// WordAt returns the identifier or symbolic operator touching offset and its
// byte range.
func (fb *FileBuffer) WordAt(offset int) (word string, start, end int) {
	data := fb.buf.Bytes()
	if offset < 0 || offset > len(data) {
		return "", offset, offset
	}

	class := isIdentByte
	switch {
	case offset < len(data) && isIdentByte(data[offset]):
	case offset > 0 && isIdentByte(data[offset-1]):
	case offset < len(data) && isSymbolByte(data[offset]):
		class = isSymbolByte
	case offset > 0 && isSymbolByte(data[offset-1]):
		class = isSymbolByte
	default:
		return "", offset, offset
	}

	start, end = offset, offset
	for start > 0 && class(data[start-1]) {
		start--
	}
	for end < len(data) && class(data[end]) {
		end++
	}
	return string(data[start:end]), start, end
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '\'' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func isSymbolByte(c byte) bool {
	return bytes.IndexByte([]byte("!%&$#+-/:<=>?@\\~^|*"), c) >= 0
}

func (fb *FileBuffer) lineStart(ln int) int {
	if ln <= 0 || len(fb.offsets) == 0 {
		return 0
	}
	if ln > len(fb.offsets) {
		ln = len(fb.offsets)
	}
	return fb.offsets[ln-1] + 1
}

func (fb *FileBuffer) findNearestLineIndex(offset int) int {
	index := sort.Search(len(fb.offsets), func(i int) bool {
		return fb.offsets[i] >= offset
	})

	if index < len(fb.offsets) {
		if fb.offsets[index] < offset {
			return index
		}
		return index - 1
	} else {
		// If offset is further than any newline, then the last newline is the
		// nearest.
		return index - 1
	}
}

func (fb *FileBuffer) read(start, end int) ([]byte, error) {
	r := bytes.NewReader(fb.buf.Bytes())

	_, err := r.Seek(int64(start), io.SeekStart)
	if err != nil {
		return nil, err
	}

	line := make([]byte, end-start)
	n, err := r.Read(line)
	if err != nil && err != io.EOF {
		return nil, err
	}

	return line[:n], nil
}
