// Package writers turns extraction results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (BPSEQ text, JSON/JSONL/TSV).
//   - The core stays domain-only; the app stays orchestration-only.
//   - JSON/JSONL rows go through pkg/api (v1) for a stable wire format;
//     the full JSON document uses the core's tagged motif codec.
package writers
