package main

import "github.com/zyedidia/clipboard"

type clipMethod uint8

const (
	clipExternal clipMethod = iota
	clipInternal
)

var (
	clipCurrentMethod clipMethod
	internalClipboard string
)

// clipInitialize selects the system clipboard when one is reachable, and
// falls back to an in-process buffer otherwise. The returned error is not
// fatal: the internal method always works, it just does not leave the
// process.
func clipInitialize() error {
	if err := clipboard.Initialize(); err != nil {
		clipCurrentMethod = clipInternal
		return err
	}
	clipCurrentMethod = clipExternal
	return nil
}

// clipWrite sets the clipboard contents using the selected method.
func clipWrite(content string) error {
	if clipCurrentMethod == clipExternal {
		return clipboard.WriteAll(content, "clipboard")
	}
	internalClipboard = content
	return nil
}
