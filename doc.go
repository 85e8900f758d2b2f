// Package randsrc provides hardware and OS random number acquisition.
//
// The toolkit wraps the two ways a machine hands out raw randomness:
// the operating system's preferred cryptographic generator, and the
// CPU's on-die RDRAND/RDSEED instructions. Both sit behind one Source
// interface so callers pick a provider at configuration time instead of
// hardcoding the primitive.
//
// # Architecture Overview
//
//	randsrc/          Root package: default source, hex rendering helpers
//	├── source/       Source interface and the System/Hardware/Insecure providers
//	├── errors/       Structured error types (Phase/Kind)
//	└── cmd/randsrc/  CLI and interactive monitor
//
// # Quick Start
//
// Draw eight bytes from the system generator:
//
//	buf := make([]byte, 8)
//	if err := randsrc.Read(ctx, buf); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(randsrc.HexString(buf))
//
// Or pick a provider explicitly:
//
//	hw := source.NewHardware()
//	if hw.Available() {
//	    err := hw.Fill(ctx, buf)
//	}
//
// # Failure Model
//
// A Fill either populates the whole buffer or returns a structured error;
// on error the buffer contents are unspecified and must not be used as
// entropy. The hardware provider retries transient instruction underflow
// a bounded number of times before reporting exhaustion; the system
// provider makes exactly one request per call.
//
// # Thread Safety
//
// All sources are safe for concurrent use. Calls share no state beyond
// the thread-safe OS and hardware primitives themselves.
package randsrc
