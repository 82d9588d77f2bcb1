// pkg/api/motifs_v1.go
package api

// MotifV1 is the stable flat row schema for extracted motifs (TSV and
// JSONL outputs). Keep fields, names, and types stable. Add new fields
// only with ",omitempty".
//
// For strands and hairpins, Begin/End/Sequence describe the run itself.
// For stems, Begin/End/Sequence describe the 5'→3' strand and
// PartnerBegin/PartnerEnd the 3'→5' strand. For pseudoknots, Begin/End
// is the first stem's pairing span and PartnerBegin/PartnerEnd the
// second stem's.
type MotifV1 struct {
	Kind         string `json:"kind"` // "strand" | "hairpin" | "stem" | "pseudoknot"
	Begin        int    `json:"begin"`
	End          int    `json:"end"`
	Length       int    `json:"length"`
	Sequence     string `json:"sequence,omitempty"`
	PartnerBegin int    `json:"partner_begin,omitempty"`
	PartnerEnd   int    `json:"partner_end,omitempty"`
	SourceID     string `json:"source_id,omitempty"`
}
