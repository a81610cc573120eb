package inline

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"

	"github.com/vkgrab-cli/vkgrab/filesystem"
	"github.com/vkgrab-cli/vkgrab/icon"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/style"
	"github.com/vkgrab-cli/vkgrab/util"
	"github.com/vkgrab-cli/vkgrab/vk"
)

// Options configures a single non-interactive run.
type Options struct {
	// URL is the video url or anything containing a video reference.
	URL string

	// Client performs the platform requests.
	Client *vk.Client

	// Json switches the output to a machine-readable document.
	Json bool

	// Quality selects a variant by its label. Empty means all variants
	// are listed, or prompted for when downloading.
	Quality string

	// Output is a file path to download the selected variant to. Empty
	// means links are printed, not downloaded.
	Output string

	// Out receives the printed output.
	Out io.Writer
}

// Run resolves the video and either prints its download links or
// downloads the selected variant.
func Run(options *Options) error {
	ref, err := vk.ExtractReference(options.URL)
	if err != nil {
		return err
	}

	video, err := options.Client.Resolve(ref)
	if err != nil {
		return err
	}

	options.Client.ProbeSizes(video)

	if options.Output != "" {
		return download(options, video)
	}

	if options.Json {
		doc, err := asJson(ref, video)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(options.Out, string(doc))
		return err
	}

	return printLinks(options, video)
}

func printLinks(options *Options, video *source.Video) error {
	variants := video.Variants
	if options.Quality != "" {
		variant, ok := video.VariantByQuality(options.Quality)
		if !ok {
			return fmt.Errorf("quality %s not available", options.Quality)
		}

		variants = []*source.Variant{variant}
	}

	if len(variants) == 0 {
		_, err := fmt.Fprintln(options.Out, "No download links found")
		return err
	}

	_, _ = fmt.Fprintln(options.Out, style.Bold(video.Title))

	for _, variant := range variants {
		label := variant.Quality
		if variant.Adaptive() {
			label += " " + style.Faint("(adaptive)")
		} else if variant.Size > 0 {
			label += " " + style.Faint(fmt.Sprintf("(%s)", variant.PrettySize()))
		}

		_, err := fmt.Fprintf(options.Out, "%s %s\n  %s\n", icon.Get(icon.Video), label, variant.URL)
		if err != nil {
			return err
		}
	}

	return nil
}

func download(options *Options, video *source.Video) error {
	downloadable := video.Downloadable()
	if len(downloadable) == 0 {
		return fmt.Errorf("no downloadable variants found")
	}

	var variant *source.Variant
	if options.Quality != "" {
		v, ok := video.VariantByQuality(options.Quality)
		if !ok || v.Adaptive() {
			return fmt.Errorf("quality %s not available for download", options.Quality)
		}

		variant = v
	} else if len(downloadable) == 1 {
		variant = downloadable[0]
	} else {
		var picked string
		err := survey.AskOne(&survey.Select{
			Message: "Which quality to download?",
			Options: lo.Map(downloadable, func(v *source.Variant, _ int) string {
				return v.Quality
			}),
		}, &picked)
		if err != nil {
			return err
		}

		variant = lo.Must(video.VariantByQuality(picked))
	}

	path := options.Output
	if info, err := filesystem.API().Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, fmt.Sprintf("%s_%s.mp4", util.SanitizeFilename(video.Title), variant.Quality))
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Downloading %s...", icon.Get(icon.Progress), variant.Quality))
	err := options.Client.Download(variant, path, nil)
	erase()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(options.Out, "%s saved to %s\n", icon.Get(icon.Success), path)
	return err
}
