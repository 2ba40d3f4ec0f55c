package cli

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicFiles embed.FS

func topicFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return topicFiles
	}
	return sub
}
