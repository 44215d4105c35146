package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/katalvlaran/sortition/rational"
)

// Load reads a whitespace-separated list of positive weights from r.
// Tokens may be integers ("40"), decimals ("0.35") or fractions ("7/20"),
// mixed freely; newlines and repeated spaces are insignificant. Lines
// starting with '#' are comments.
//
// Errors:
//   - ErrNoWeights — the stream held no tokens.
//   - ErrBadWeight — a token failed to parse or was not positive;
//     the error names the token and its position.
func Load(r io.Reader) ([]*big.Rat, error) {
	var out []*big.Rat
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			w, err := rational.Parse(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at position %d: %v",
					ErrBadWeight, tok, len(out)+1, err)
			}
			if w.Sign() <= 0 {
				return nil, fmt.Errorf("%w: %q at position %d: not positive",
					ErrBadWeight, tok, len(out)+1)
			}
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoWeights
	}
	return out, nil
}

// LoadFile opens path and delegates to Load. "-" means standard input.
func LoadFile(path string) ([]*big.Rat, error) {
	if path == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()
	return Load(f)
}
