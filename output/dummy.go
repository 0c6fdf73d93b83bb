package output

// DummyOutput discards everything written to it; useful for headless runs
// and tests that only care about Buffer/keyseq behavior, mirroring
// input.DummyInput on the output side.
type DummyOutput struct{}

func NewDummyOutput() *DummyOutput { return &DummyOutput{} }

func (DummyOutput) Write(string)    {}
func (DummyOutput) WriteRaw(string) {}

func (DummyOutput) CursorGoto(int, int) {}
func (DummyOutput) CursorUp(int)        {}
func (DummyOutput) CursorDown(int)      {}
func (DummyOutput) CursorForward(int)   {}
func (DummyOutput) CursorBackward(int)  {}

func (DummyOutput) EraseScreen()    {}
func (DummyOutput) EraseEndOfLine() {}
func (DummyOutput) EraseDown()      {}

func (DummyOutput) EnterAlternateScreen() {}
func (DummyOutput) QuitAlternateScreen()  {}

func (DummyOutput) HideCursor()                    {}
func (DummyOutput) ShowCursor()                     {}
func (DummyOutput) SetCursorShape(shape CursorShape) {}

func (DummyOutput) ResetAttributes()                          {}
func (DummyOutput) SetAttributes(style Style, depth ColorDepth) {}

func (DummyOutput) SetTitle(string) {}
func (DummyOutput) ClearTitle()     {}

func (DummyOutput) Bell() {}

func (DummyOutput) Flush() error { return nil }

func (DummyOutput) GetSize() (Size, error) { return Size{Rows: 24, Columns: 80}, nil }

func (DummyOutput) EnableMouseSupport()    {}
func (DummyOutput) DisableMouseSupport()   {}
func (DummyOutput) EnableBracketedPaste()  {}
func (DummyOutput) DisableBracketedPaste() {}
