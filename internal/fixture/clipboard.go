package fixture

import "golang.design/x/clipboard"

// CopyToClipboard places text on the system clipboard. It fails when no
// clipboard is available, e.g. on a headless machine.
func CopyToClipboard(text []byte) error {
	if err := clipboard.Init(); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtText, text)
	return nil
}
