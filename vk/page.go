package vk

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vkgrab-cli/vkgrab/source"
)

const untitledPage = "Untitled Video"

var pageLinkRegex = regexp.MustCompile(`"url(\d+)":"([^"]+)"`)

// parsePage scrapes the public video page. It recovers less than the
// player endpoint: the title from the page markup and a single direct
// link dug out of the inlined player state.
func parsePage(body []byte) *source.Video {
	video := &source.Video{Title: untitledPage}

	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		for _, selector := range []string{".mv_title", ".VideoPageInfoRow__title"} {
			title := strings.TrimSpace(doc.Find(selector).First().Text())
			if title != "" {
				video.Title = title
				break
			}
		}
	}

	match := pageLinkRegex.FindSubmatch(body)
	if match != nil {
		video.Variants = []*source.Variant{
			{
				Quality: "mp4_" + string(match[1]),
				URL:     strings.ReplaceAll(string(match[2]), `\`, ""),
			},
		}
	}

	return video
}
