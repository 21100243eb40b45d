package position

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
)

// ErrTrackExhausted is returned once a non-looping track has been replayed
var ErrTrackExhausted = errors.New("position track exhausted")

// ErrReadOnlySource is returned when pushing into a replayed track
var ErrReadOnlySource = domainerrors.NewBaseError(
	http.StatusConflict,
	"READ_ONLY_POSITION_SOURCE",
	"position source is a replayed track",
	"",
)

// TrackSource replays recorded positions, one per call.
type TrackSource struct {
	mu     sync.Mutex
	points []entity.Point
	next   int
	loop   bool
}

// NewTrackSource replays points in order
func NewTrackSource(points []entity.Point, loop bool) (*TrackSource, error) {
	if len(points) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("track has no points")
	}

	return &TrackSource{points: append([]entity.Point(nil), points...), loop: loop}, nil
}

// LoadTrack reads a CSV with an x,y,z header
func LoadTrack(path string, loop bool) (*TrackSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open track")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, errors.Wrap(err, "failed to read track header")
	}

	var points []entity.Point
	lineNum := 1
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrap(readErr, "failed to read track")
		}
		lineNum++

		if len(record) < 3 {
			return nil, errors.Errorf("invalid track format at line %d: expected 3 columns, got %d", lineNum, len(record))
		}

		var coords [3]float64
		for i := range coords {
			coords[i], err = strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "track line %d", lineNum)
			}
		}

		points = append(points, entity.Point{X: coords[0], Y: coords[1], Z: coords[2]})
	}

	return NewTrackSource(points, loop)
}

// CurrentPosition returns the next recorded point
func (s *TrackSource) CurrentPosition(_ context.Context) (entity.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.points) {
		if !s.loop {
			return s.points[len(s.points)-1], ErrTrackExhausted
		}
		s.next = 0
	}

	point := s.points[s.next]
	s.next++

	return point, nil
}

// UpdatePosition always fails
func (s *TrackSource) UpdatePosition(_ context.Context, _ entity.Point) error {
	return ErrReadOnlySource
}

// Len returns the number of recorded points
func (s *TrackSource) Len() int {
	return len(s.points)
}

var (
	_ service.PositionSource = (*TrackSource)(nil)
	_ service.PositionSink   = (*TrackSource)(nil)
)
