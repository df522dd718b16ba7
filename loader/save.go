package loader

import (
	"bufio"
	"fmt"
	"io"
)

// Save writes a program image in the format read by Load.
// If comment is not nil, it is called for each address, and a non-empty
// result is appended to the line.
func Save(output io.Writer, image []byte, comment func(address int) string) (err error) {
	w := bufio.NewWriter(output)

	for address, value := range image {
		line := fmt.Sprintf("%08b", value)
		if comment != nil {
			note := comment(address)
			if len(note) != 0 {
				line += " # " + note
			}
		}
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}
