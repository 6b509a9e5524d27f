package vtcore

// PrinterController is the host-injected sink for printer-mode output (spec
// §6, "printer controller"). Grounded on the teacher's implicit
// printer-mode plumbing referenced from parser.go's OSC handling (PurfecTerm
// never exposed it as an interface); vtcore makes the contract explicit.
type PrinterController interface {
	SetPrinterControllerMode(enabled bool)
	SetAutoPrintMode(enabled bool)
	PrintScreen(lines []string)
	Write(p []byte)
}

// NoopPrinter is the default PrinterController: every method is a no-op
// (spec §6, "Default implementation is a no-op sink").
type NoopPrinter struct{}

func (NoopPrinter) SetPrinterControllerMode(bool) {}
func (NoopPrinter) SetAutoPrintMode(bool)         {}
func (NoopPrinter) PrintScreen([]string)          {}
func (NoopPrinter) Write([]byte)                  {}
