package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Read returns at most maxLines complete lines from the end of the file at
// path, together with the byte offset just past the last newline. A trailing
// fragment without a newline is not returned and not counted in the offset,
// so a follower starting at offset picks it up once it is finished.
func Read(path string, maxLines int) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var ring []string
	if maxLines > 0 {
		ring = make([]string, maxLines)
	}
	reader := bufio.NewReaderSize(file, 64*1024)
	var offset int64
	count := 0
	idx := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, fmt.Errorf("read %s: %w", path, err)
		}
		offset += int64(len(raw))
		if maxLines <= 0 {
			continue
		}
		ring[idx] = TrimLine(raw)
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, nil
}
