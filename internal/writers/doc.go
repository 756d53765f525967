// Package writers turns a finished comparison report into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (TSV layout, JSON schema).
//   - The kmer core stays domain-only; compare stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
