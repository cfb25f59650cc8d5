// # csvloader: Typed CSV Loading for Telemetry Ingestion
//
// csvloader turns raw CSV text into a typed, in-memory grid in a single pass. Every field is
// classified as an integer, a float, a string, or null without a schema, which suits exports
// where numeric telemetry is mixed with free text.
//
// # Features
//
// - One pass over the input, tracking quoting, numeric shape, and field/row boundaries together.
// - Per-field inference: empty fields load as null, `""` loads as the empty string.
// - Doubled-quote unescaping through a call-scoped scratch buffer that only grows.
// - Structured error reporting via `ParseError`, `ErrMalformedQuoting`, and `ErrAllocationFailure`.
// - A `Writer` that emits typed rows as text `Loads` reads back to the same values.
//
// # Dialect
//
// Fields are separated by ',' and rows by '\n'. A field is quoted only when its first byte is
// '"'; inside it, '""' stands for a literal quote and newlines are data. Rows may have any
// number of fields. The input is treated as bytes and is not validated as UTF-8.
//
// # Getting Started
//
//	grid, err := csvloader.LoadsString("1,2.5,,\"\",hello\n")
//	if err != nil {
//		return err
//	}
//	n, _ := grid[0][0].Int() // 1
package csvloader
