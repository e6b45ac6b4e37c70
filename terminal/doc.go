// Package terminal provides the character-cell display surface and tcell-backed terminal access.
//
// Features:
//   - Cell buffer addressed by absolute grid coordinate with rectangle-wide style patching
//   - Display-width aware string placement (wide glyphs span two cells)
//   - Flush into a double-buffered tcell screen, only changed cells reach the terminal
//   - Blocking key/resize event polling translated into a small Event value
//
// Drawing code only borrows a *Buffer for the duration of one frame; the Terminal owns the screen.
package terminal
