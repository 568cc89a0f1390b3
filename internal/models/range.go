package models

import "fmt"

// ByteRange is an end-inclusive span of bytes within a file, as carried by
// an HTTP Range request. Both bounds are offsets into the file, so a range
// covering only the first byte is {0, 0}.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes the range covers.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange renders the Content-Range header value for a file of the
// given total size, e.g. "bytes 0-1023/4096".
func (r ByteRange) ContentRange(fileSize int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, fileSize)
}
