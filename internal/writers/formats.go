// internal/writers/formats.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"rnamotif/internal/jsonutil"

	"rnamotif-core/motif"
)

func init() {
	Register("bpseq", writeBPSEQ)
	Register("json", writeJSON)
	Register("jsonl", writeJSONL)
	Register("tsv", writeTSV)
}

// writeBPSEQ renders the structure as BPSEQ text, one triple per line.
func writeBPSEQ(w io.Writer, r Report) error {
	if _, err := io.WriteString(w, r.BPSEQ.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// jsonDocument is the shape of the "json" output: the motifs carry
// their discriminator tags from the core codec.
type jsonDocument struct {
	ID     string        `json:"id,omitempty"`
	Motifs []motif.Motif `json:"motifs"`
}

func writeJSON(w io.Writer, r Report) error {
	doc := jsonDocument{ID: r.ID, Motifs: r.Motifs}
	if doc.Motifs == nil {
		doc.Motifs = []motif.Motif{}
	}
	return jsonutil.EncodePretty(w, doc)
}

// writeJSONL emits one flat v1 row per motif.
func writeJSONL(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	for _, m := range r.Motifs {
		if err := enc.Encode(ToAPIMotif(m, r.ID)); err != nil {
			return err
		}
	}
	return nil
}

const tsvHeader = "kind\tbegin\tend\tlength\tsequence\tpartner_begin\tpartner_end\tsource_id\n"

// writeTSV prints a header row then one line per motif.
func writeTSV(w io.Writer, r Report) error {
	if _, err := io.WriteString(w, tsvHeader); err != nil {
		return err
	}
	for _, m := range r.Motifs {
		row := ToAPIMotif(m, r.ID)
		_, err := fmt.Fprintf(w,
			"%s\t%d\t%d\t%d\t%s\t%d\t%d\t%s\n",
			row.Kind, row.Begin, row.End, row.Length,
			row.Sequence, row.PartnerBegin, row.PartnerEnd, row.SourceID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
