package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatBytes(t *testing.T) {
	Convey("FormatBytes", t, func() {
		Convey("Should render sub-kilobyte values in bytes", func() {
			So(FormatBytes(0), ShouldEqual, "0.00 B")
			So(FormatBytes(512), ShouldEqual, "512.00 B")
			So(FormatBytes(1023), ShouldEqual, "1023.00 B")
		})

		Convey("Should escalate to the first unit below 1024", func() {
			So(FormatBytes(1024), ShouldEqual, "1.00 KB")
			So(FormatBytes(1536), ShouldEqual, "1.50 KB")
			So(FormatBytes(1048576), ShouldEqual, "1.00 MB")
			So(FormatBytes(1073741824), ShouldEqual, "1.00 GB")
		})

		Convey("Should cap at terabytes without further escalation", func() {
			So(FormatBytes(1099511627776), ShouldEqual, "1.00 TB")
			So(FormatBytes(1099511627776*2048), ShouldEqual, "2048.00 TB")
		})
	})
}

func TestFormatDuration(t *testing.T) {
	Convey("FormatDuration", t, func() {
		So(FormatDuration(0), ShouldEqual, "0:00")
		So(FormatDuration(59), ShouldEqual, "0:59")
		So(FormatDuration(61), ShouldEqual, "1:01")
		So(FormatDuration(3661), ShouldEqual, "1:01:01")
	})
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "source", "sources"), ShouldEqual, "1 source")
		So(Quantify(2, "source", "sources"), ShouldEqual, "2 sources")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<owner>-?\d+)_(?P<item>\d+)`)
		groups := ReGroups(re, "-123_456")
		So(groups["owner"], ShouldEqual, "-123")
		So(groups["item"], ShouldEqual, "456")
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
