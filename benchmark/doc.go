// Package benchmark holds routelog's benchmark suite: micro-benchmarks
// for chain dispatch and a competitive suite that measures a
// single-message warning write against zap, zerolog, logrus, and
// log/slog over io.Discard.
//
// The comparison is deliberately narrow. routelog routes a bare
// severity-plus-text message to exactly one sink; the other frameworks
// are measured doing the closest equivalent (one unstructured message
// to one discard sink), not their structured-field hot paths.
package benchmark
