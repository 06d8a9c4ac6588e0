package game

import "github.com/atotto/clipboard"

// clipboardWriter lets tests swap out the system clipboard.
var clipboardWriter = clipboard.WriteAll

func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboardWriter(text)
}
