package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errNoInput = errors.New("no input: pass an argument or --file")

// readInput returns the single argument, or the contents of file ("-" for stdin).
func readInput(stdin io.Reader, args []string, file string) ([]byte, error) {
	switch {
	case file == "-":
		return io.ReadAll(stdin)
	case file != "":
		return os.ReadFile(file)
	case len(args) > 0:
		return []byte(args[0]), nil
	}
	return nil, errNoInput
}

// decodeHexInput accepts upper or lower case hex with surrounding whitespace and an optional 0x prefix.
func decodeHexInput(raw []byte) ([]byte, error) {
	s := strings.TrimSpace(string(raw))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload: %w", err)
	}
	return b, nil
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
