package widgets

import "github.com/atotto/clipboard"

// Clipboard holds text copied or cut from a TextArea.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// LocalClipboard keeps copied text in process.
type LocalClipboard struct {
	text string
}

func (c *LocalClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *LocalClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// SystemClipboard uses the desktop clipboard. When no clipboard utility is
// available it behaves like a LocalClipboard.
type SystemClipboard struct {
	local LocalClipboard
}

func (c *SystemClipboard) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return c.local.ReadAll()
	}
	return text, nil
}

func (c *SystemClipboard) WriteAll(text string) error {
	_ = c.local.WriteAll(text)
	// Errors only mean no system clipboard; the local copy still pastes.
	_ = clipboard.WriteAll(text)
	return nil
}
