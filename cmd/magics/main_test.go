package main

import (
	"strings"
	"testing"
)

func TestFormatMagics(t *testing.T) {
	var magics [64]uint64
	magics[0] = 0x8A80104000800020
	magics[63] = 1
	var s = formatMagics("rookMagics", &magics)
	if !strings.HasPrefix(s, "var rookMagics = [64]uint64{\n\t0x8A80104000800020, ") {
		t.Error(s)
	}
	if !strings.HasSuffix(s, "0x0000000000000001,\n}\n") {
		t.Error(s)
	}
	if got := strings.Count(s, "\n"); got != 18 {
		t.Errorf("%v lines", got)
	}
}
