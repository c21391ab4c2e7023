package encode

import "github.com/signadot/subset/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeQuote sets whether strings in sequences and arrays are printed
// quoted. It is on by default; table cells are never quoted.
func EncodeQuote(v bool) EncodeOption {
	return func(es *EncState) { es.quote = v }
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	switch f {
	case format.JSONFormat:
		return ".json"
	case format.YAMLFormat:
		return ".yaml"
	default:
		return ".txt"
	}
}
