package pose

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// wirePoint is one landmark as emitted by the estimator bridge: normalised
// x/y plus an optional visibility in [0,1].
type wirePoint struct {
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Visibility *float64 `json:"visibility,omitempty"`
}

// MinVisibility is the visibility below which a landmark counts as absent.
const MinVisibility = 0.5

// ParseFrame decodes one JSON array of landmarks.
func ParseFrame(line []byte) (Frame, error) {
	var points []*wirePoint
	if err := json.Unmarshal(line, &points); err != nil {
		return nil, fmt.Errorf("decoding landmarks: %w", err)
	}

	frame := make(Frame, len(points))
	for i, p := range points {
		if p == nil || p.X == nil || p.Y == nil {
			continue
		}
		if p.Visibility != nil && *p.Visibility < MinVisibility {
			continue
		}
		frame[i] = Point(*p.X, *p.Y)
	}
	return frame, nil
}

// Stream reads newline-delimited landmark frames from r and sends them on
// the returned channel until r is exhausted, a line fails to decode, or
// ctx is cancelled. The error channel receives at most one value and both
// channels are closed when reading stops.
func Stream(ctx context.Context, r io.Reader) (<-chan Frame, <-chan error) {
	frames := make(chan Frame)
	errs := make(chan error, 1)

	go func() {
		defer close(frames)
		defer close(errs)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			frame, err := ParseFrame(line)
			if err != nil {
				errs <- err
				return
			}
			select {
			case frames <- frame:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return frames, errs
}
