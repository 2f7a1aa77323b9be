package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexvm/s16/arch"
)

func TestParsePresets(t *testing.T) {
	presets, err := parsePresets("r1=11,rsp=0x8000,r16=3")
	require.NoError(t, err)
	assert.Equal(t, map[int]uint16{
		1:        11,
		arch.RSP: 0x8000,
		16:       3,
	}, presets)

	presets, err = parsePresets("")
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestParsePresetsInvalid(t *testing.T) {
	table := []struct {
		name string
		in   string
	}{
		{"missing value", "r1"},
		{"unknown register", "zz=1"},
		{"register out of range", "r64=1"},
		{"malformed value", "r1=bogus"},
		{"value out of range", "r1=70000"},
	}

	for _, entry := range table {
		_, err := parsePresets(entry.in)
		assert.Error(t, err, entry.name)
	}
}
