package server

import (
	"strconv"
	"strings"

	"github.com/logview/rangeserve/internal/models"
)

const bytesUnit = "bytes="

// rangeSpec is a parsed but not yet validated Range header. The end bound
// can only be defaulted once the target file's size is known, so parsing and
// resolution are separate steps.
type rangeSpec struct {
	start  int64
	end    int64
	hasEnd bool
}

// parseRangeHeader parses a header of the form "bytes=<start>-<end>", where
// either bound may be empty. An empty start always means offset 0; suffix
// ranges ("bytes=-500" meaning the last 500 bytes) are not supported.
func parseRangeHeader(value string) (rangeSpec, error) {
	if !strings.HasPrefix(value, bytesUnit) {
		return rangeSpec{}, errInvalidRange
	}

	startStr, endStr, found := strings.Cut(strings.TrimPrefix(value, bytesUnit), "-")
	if !found {
		return rangeSpec{}, errInvalidRange
	}

	var spec rangeSpec
	if startStr != "" {
		start, err := strconv.ParseInt(startStr, 10, 64)
		if err != nil {
			return rangeSpec{}, errInvalidRange
		}
		spec.start = start
	}
	if endStr != "" {
		end, err := strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return rangeSpec{}, errInvalidRange
		}
		spec.end = end
		spec.hasEnd = true
	}
	return spec, nil
}

// resolve defaults a missing end bound to the last byte of the file and
// validates the bounds. There is no clamping: a range reaching past the end
// of the file is rejected outright.
func (s rangeSpec) resolve(fileSize int64) (models.ByteRange, error) {
	end := s.end
	if !s.hasEnd {
		end = fileSize - 1
	}
	if s.start < 0 || end >= fileSize || s.start > end {
		return models.ByteRange{}, errUnsatisfiable
	}
	return models.ByteRange{Start: s.start, End: end}, nil
}
