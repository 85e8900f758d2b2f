// Package source implements entropy source providers.
//
// Implements:
//   - System   - the platform's preferred cryptographic RNG
//     (getrandom(2) on Linux, BCryptGenRandom on Windows,
//     crypto/rand elsewhere)
//   - Hardware - the CPU RDRAND/RDSEED instructions on amd64
//   - Insecure - fast non-cryptographic random for comparison runs
//
// Every source implements the Source interface and is safe for concurrent
// use; calls share no state. A Fill either populates the whole buffer or
// returns an error, in which case the buffer contents must not be used
// as entropy.
//
// The hardware source wraps the single-attempt instruction in a bounded
// retry, since transient underflow is expected behavior for that class of
// instruction. TryUint64 exposes the raw one-attempt primitive.
package source
