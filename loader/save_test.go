package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSave(t *testing.T) {
	assert := assert.New(t)

	image := []byte{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}
	notes := map[int]string{
		0: "LDI R0,8",
		3: "PRN R0",
		5: "HLT",
	}

	buff := &bytes.Buffer{}
	err := Save(buff, image, func(address int) string {
		return notes[address]
	})
	assert.NoError(err)

	expected := strings.Join([]string{
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
		"",
	}, "\n")
	assert.Equal(expected, buff.String())

	// A saved image loads back strictly.
	loaded, err := Load(buff, Strict())
	assert.NoError(err)
	assert.Equal(image, loaded)
}

func TestSaveBare(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	assert.NoError(Save(buff, []byte{0xff, 0x00}, nil))
	assert.Equal("11111111\n00000000\n", buff.String())

	buff.Reset()
	assert.NoError(Save(buff, nil, nil))
	assert.Empty(buff.String())
}
