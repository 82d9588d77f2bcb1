// internal/writers/rows.go
package writers

import (
	"rnamotif/pkg/api"

	"rnamotif-core/motif"
)

// ToAPIMotif flattens a motif into the stable v1 row schema.
func ToAPIMotif(m motif.Motif, sourceID string) api.MotifV1 {
	switch v := m.(type) {
	case motif.Strand:
		return api.MotifV1{
			Kind: "strand", Begin: v.Begin, End: v.End,
			Length: v.Len(), Sequence: v.Sequence, SourceID: sourceID,
		}
	case motif.Hairpin:
		return api.MotifV1{
			Kind: "hairpin", Begin: v.Begin, End: v.End,
			Length: v.Len(), Sequence: v.Sequence, SourceID: sourceID,
		}
	case motif.Stem:
		return api.MotifV1{
			Kind: "stem", Begin: v.Strand1.Begin, End: v.Strand1.End,
			Length: v.Strand1.Len(), Sequence: v.Strand1.Sequence,
			PartnerBegin: v.Strand2.Begin, PartnerEnd: v.Strand2.End,
			SourceID: sourceID,
		}
	case motif.Pseudoknot:
		return api.MotifV1{
			Kind:  "pseudoknot",
			Begin: v.Stem1.Strand1.Begin, End: v.Stem1.Strand2.Begin,
			Length:       v.Stem1.Strand1.Len(),
			PartnerBegin: v.Stem2.Strand1.Begin, PartnerEnd: v.Stem2.Strand2.Begin,
			SourceID: sourceID,
		}
	default:
		return api.MotifV1{Kind: "unknown", SourceID: sourceID}
	}
}
