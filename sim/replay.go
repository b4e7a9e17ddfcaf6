// sim/replay.go
package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrMalformedLine marks trace lines that do not parse at all. Replay drops
// these without a warning; lines that parse but carry an unsupported size or
// a misaligned address are dropped with a warning instead.
var ErrMalformedLine = errors.New("malformed trace line")

// ParseAccessLine parses one trace line of the form KIND:SIZE:HEXADDR, for
// example "R:4:7fff0040". Kind must be R, r, W, or w; size one of 1, 2, 4,
// or 8; the address a hexadecimal integer aligned to the access size.
func ParseAccessLine(line string) (AccessEvent, error) {
	fields := strings.SplitN(strings.TrimSpace(line), ":", 3)
	if len(fields) != 3 {
		return AccessEvent{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	if len(fields[0]) != 1 {
		return AccessEvent{}, fmt.Errorf("%w: bad access kind %q", ErrMalformedLine, fields[0])
	}
	kind := AccessKind(fields[0][0])
	if !kind.IsRead() && !kind.IsWrite() {
		return AccessEvent{}, fmt.Errorf("%w: unknown access kind %q", ErrMalformedLine, fields[0])
	}

	size, err := strconv.Atoi(fields[1])
	if err != nil {
		return AccessEvent{}, fmt.Errorf("%w: bad access size %q", ErrMalformedLine, fields[1])
	}

	address, err := strconv.ParseUint(strings.TrimPrefix(fields[2], "0x"), 16, 32)
	if err != nil {
		return AccessEvent{}, fmt.Errorf("%w: bad address %q", ErrMalformedLine, fields[2])
	}

	if size != 1 && size != 2 && size != 4 && size != 8 {
		return AccessEvent{}, fmt.Errorf("invalid access size %d", size)
	}
	if address&uint64(size-1) != 0 {
		return AccessEvent{}, fmt.Errorf("misaligned access at 0x%x", address)
	}

	return AccessEvent{Kind: kind, Size: size, Address: uint32(address)}, nil
}

// Replay reads trace lines from r and feeds each well-formed access to the
// cache in input order, calling fn with every outcome. Unparseable lines are
// dropped, and accesses with an unsupported size or misaligned address are
// dropped with a warning; neither reaches the cache model. The input is
// consumed lazily, one line at a time.
func Replay(cache *Cache, r io.Reader, fn func(Outcome)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		event, err := ParseAccessLine(line)
		if err != nil {
			if errors.Is(err, ErrMalformedLine) {
				logrus.Debugf("Skipping trace line: %v", err)
			} else {
				logrus.Warnf("Skipping trace line: %v", err)
			}
			continue
		}
		outcome := cache.Process(event)
		if fn != nil {
			fn(outcome)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading trace: %w", err)
	}
	return nil
}
