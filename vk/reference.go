package vk

import (
	"regexp"

	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/util"
)

var (
	videoRefRegex = regexp.MustCompile(`video(?P<owner>-?\d+)_(?P<item>\d+)`)
	videoExtRegex = regexp.MustCompile(`video_ext\.php\?oid=(?P<owner>-?\d+)&id=(?P<item>\d+)`)
)

// ExtractReference pulls the owner/item video reference out of a vk.com
// url or any text containing one. Both the canonical videoOWNER_ITEM form
// and the legacy video_ext.php embed form are recognized.
func ExtractReference(input string) (source.Reference, error) {
	for _, re := range []*regexp.Regexp{videoRefRegex, videoExtRegex} {
		groups := util.ReGroups(re, input)
		if len(groups) == 0 {
			continue
		}

		return source.Reference{
			Owner: groups["owner"],
			Item:  groups["item"],
		}, nil
	}

	return source.Reference{}, source.ErrNoReference
}
