// Command dtmfgen renders a dial string as a WAV file of DTMF tones.
//
//	dtmfgen <out.wav> <toneSeconds> <digits>
//
// toneSeconds applies to every symbol and must lie in [0.1, 1.0].
// The digit string accepts 0-9, '#', '*', and '-' for a pause.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/easydtmf/easydtmf/internal/dtmf"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <out.wav> <toneSeconds> <digits>\n", os.Args[0])
		os.Exit(1)
	}

	duration, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dtmfgen: bad tone duration %q: %v\n", os.Args[2], err)
		os.Exit(1)
	}

	if err := dtmf.Synthesize(os.Args[1], duration, os.Args[3]); err != nil {
		fmt.Fprintf(os.Stderr, "dtmfgen: %v\n", err)
		os.Exit(1)
	}
}
