package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/log"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/util"
	"github.com/vkgrab-cli/vkgrab/vk"
	"github.com/vkgrab-cli/vkgrab/where"
)

type (
	downloadProgressMsg int
	downloadDoneMsg     string
)

// fetchVideo resolves the reference behind url and probes the variant
// sizes in the background. The result lands on the bubble's channels.
func (b *statefulBubble) fetchVideo(url string) tea.Cmd {
	return func() tea.Msg {
		go func() {
			ref, err := vk.ExtractReference(url)
			if err != nil {
				b.errorChannel <- err
				return
			}

			log.Infof("resolving %s", ref)

			video, err := b.client.Resolve(ref)
			if err != nil {
				b.errorChannel <- err
				return
			}

			b.client.ProbeSizes(video)
			b.fetchedVideoChannel <- video
		}()

		return nil
	}
}

// waitForVideo blocks until the fetch pipeline produces either a video
// or an error and forwards it as a message.
func (b *statefulBubble) waitForVideo() tea.Cmd {
	return func() tea.Msg {
		select {
		case video := <-b.fetchedVideoChannel:
			return video
		case err := <-b.errorChannel:
			return err
		}
	}
}

// startDownload streams the selected variant to the downloads directory
// in the background, reporting progress through the bubble's channels.
func (b *statefulBubble) startDownload(variant *source.Variant) tea.Cmd {
	b.busy = true

	return func() tea.Msg {
		go func() {
			path := b.downloadPath(variant)

			log.Infof("downloading %s to %s", variant.Quality, path)

			err := b.client.Download(variant, path, func(percent int) {
				select {
				case b.downloadProgressChannel <- percent:
				default:
				}
			})
			if err != nil {
				b.errorChannel <- err
				return
			}

			b.downloadDoneChannel <- path
		}()

		return nil
	}
}

// waitForDownload delivers the next progress tick, the final path or a
// download error as a message.
func (b *statefulBubble) waitForDownload() tea.Cmd {
	return func() tea.Msg {
		select {
		case percent := <-b.downloadProgressChannel:
			return downloadProgressMsg(percent)
		case path := <-b.downloadDoneChannel:
			return downloadDoneMsg(path)
		case err := <-b.errorChannel:
			return err
		}
	}
}

func (b *statefulBubble) downloadPath(variant *source.Variant) string {
	dir := viper.GetString(key.DownloadsPath)
	if dir == "" {
		dir = where.Downloads()
	}

	name := source.UntitledVideo
	if b.currentVideo != nil && b.currentVideo.Title != "" {
		name = b.currentVideo.Title
	}

	filename := fmt.Sprintf("%s_%s.mp4", util.SanitizeFilename(name), variant.Quality)
	return filepath.Join(dir, filename)
}
