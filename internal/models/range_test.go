package models

import "testing"

func TestByteRangeLength(t *testing.T) {
	if l := (ByteRange{Start: 0, End: 0}).Length(); l != 1 {
		t.Error("length mismatch:", l, "!= 1")
	}
	if l := (ByteRange{Start: 10, End: 99}).Length(); l != 90 {
		t.Error("length mismatch:", l, "!= 90")
	}
}

func TestByteRangeContentRange(t *testing.T) {
	header := ByteRange{Start: 0, End: 1023}.ContentRange(4096)
	if header != "bytes 0-1023/4096" {
		t.Error("content-range mismatch:", header)
	}
}
