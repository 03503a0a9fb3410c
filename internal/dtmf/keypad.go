// Package dtmf turns dial strings into DTMF tone audio. Each keypad
// symbol is the sum of one high-group and one low-group sine tone;
// '-' is a deliberate pause carrying no tone at all.
package dtmf

// FrequencyPair is the two sine components of one dial symbol, in Hz.
type FrequencyPair struct {
	Upper float64 // high group: 1209, 1336, 1477, or 0 for silence
	Lower float64 // low group: 697, 770, 852, 941, or 0 for silence
}

// Silence is the pair produced by '-' and by any symbol outside the
// keypad alphabet.
var Silence = FrequencyPair{}

// Frequencies maps one dial symbol to its DTMF component pair per the
// standard keypad matrix. Unknown symbols map to Silence rather than an
// error; whole-string validation happens once, up front, in the encoder.
func Frequencies(symbol byte) FrequencyPair {
	return FrequencyPair{
		Upper: upperFrequency(symbol),
		Lower: lowerFrequency(symbol),
	}
}

func upperFrequency(symbol byte) float64 {
	switch symbol {
	case '1', '4', '7', '*':
		return 1209
	case '2', '5', '8', '0':
		return 1336
	case '3', '6', '9', '#':
		return 1477
	default:
		return 0
	}
}

func lowerFrequency(symbol byte) float64 {
	switch symbol {
	case '1', '2', '3':
		return 697
	case '4', '5', '6':
		return 770
	case '7', '8', '9':
		return 852
	case '*', '0', '#':
		return 941
	default:
		return 0
	}
}

func validSymbol(symbol byte) bool {
	switch {
	case symbol >= '0' && symbol <= '9':
		return true
	case symbol == '#' || symbol == '*' || symbol == '-':
		return true
	default:
		return false
	}
}
