package helix

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestFile drops contents into a temp file and returns its path
func writeTestFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func Test_read_fasta(t *testing.T) {
	path := writeTestFile(t, "test.fa", ">plasmid circular vector\nacgtacgt\nACGTn\n")

	records, err := read(path, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 {
		t.Fatalf("read() parsed %d records, want 1", len(records))
	}
	if records[0].ID != "plasmid" {
		t.Errorf("read() id = %s, want plasmid", records[0].ID)
	}
	if records[0].Seq != "ACGTACGTACGTN" {
		t.Errorf("read() seq = %s, want ACGTACGTACGTN", records[0].Seq)
	}
}

func Test_read_multiFasta(t *testing.T) {
	path := writeTestFile(t, "test.fasta", ">first\nAAAA\n>second\nCCCC\n")

	records, err := read(path, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("read() parsed %d records, want 2", len(records))
	}
	if records[0].ID != "first" || records[0].Seq != "AAAA" {
		t.Errorf("read()[0] = %+v, want first/AAAA", records[0])
	}
	if records[1].ID != "second" || records[1].Seq != "CCCC" {
		t.Errorf("read()[1] = %+v, want second/CCCC", records[1])
	}
}

const testGenbank = `LOCUS       pTest        20 bp DNA      circular      01-JAN-2024
DEFINITION  .
ACCESSION   .
FEATURES             Location/Qualifiers
     misc_feature    1..8
                     /label="prom"
ORIGIN
        1 atgcatgcat gcatgcatgc
//
`

func Test_read_genbank(t *testing.T) {
	path := writeTestFile(t, "test.gb", testGenbank)

	records, err := read(path, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 {
		t.Fatalf("read() parsed %d records, want 1", len(records))
	}
	if records[0].ID != "pTest" {
		t.Errorf("read() id = %s, want pTest", records[0].ID)
	}
	if records[0].Seq != "ATGCATGCATGCATGCATGC" {
		t.Errorf("read() seq = %s, want ATGCATGCATGCATGCATGC", records[0].Seq)
	}
	if !records[0].Circular {
		t.Error("read() should mark the sequence circular")
	}
}

func Test_read_genbankFeatures(t *testing.T) {
	path := writeTestFile(t, "test.gb", testGenbank)

	records, err := read(path, true)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 1 {
		t.Fatalf("read() parsed %d features, want 1", len(records))
	}
	if records[0].ID != "prom" {
		t.Errorf("read() feature label = %s, want prom", records[0].ID)
	}
	if records[0].Seq != "ATGCATGC" {
		t.Errorf("read() feature seq = %s, want ATGCATGC", records[0].Seq)
	}
}

func Test_read_unrecognized(t *testing.T) {
	path := writeTestFile(t, "test.txt", "not a sequence file\n")

	if _, err := read(path, false); err == nil {
		t.Error("read() of an unrecognized file should error")
	}
}

func Test_writeGenbank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gb")
	seq := strings.Repeat("ACGTATGCAT", 7)
	hits := []AnnotationHit{
		{Name: "T7 promoter", Category: "promoter", TargetStart: 10, TargetEnd: 30},
		{Name: "rc part", Category: "misc", TargetStart: 30, TargetEnd: 45, ReverseComplement: true},
	}

	writeGenbank(path, "myseq", seq, true, hits)

	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	contents := string(dat)

	// 1-indexed inclusive ranges, reverse hits wrapped in complement()
	for _, want := range []string{
		"LOCUS       myseq",
		"circular",
		"misc_feature    11..30",
		"complement(31..45)",
		`/label="T7 promoter"`,
		"ORIGIN",
		"//",
	} {
		if !strings.Contains(contents, want) {
			t.Errorf("writeGenbank() output is missing %q", want)
		}
	}

	// the written file parses back to the same sequence
	records, err := read(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Seq != seq {
		t.Errorf("read() of the written file = %s, want %s", records[0].Seq, seq)
	}
	if !records[0].Circular {
		t.Error("read() of the written file should be circular")
	}
}

func Test_writeHitsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	hits := []AnnotationHit{
		{Name: "T7 promoter", Category: "promoter", TargetStart: 5, TargetEnd: 25, Score: 40},
	}

	writeHitsJSON(path, "myseq", "ACGTACGT", hits)

	dat, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out hitsOutput
	if err := json.Unmarshal(dat, &out); err != nil {
		t.Fatalf("failed to parse the written JSON: %v", err)
	}

	if out.Target != "myseq" || out.TargetSeq != "ACGTACGT" {
		t.Errorf("writeHitsJSON() target = %s/%s, want myseq/ACGTACGT", out.Target, out.TargetSeq)
	}
	if len(out.Hits) != 1 || out.Hits[0].Name != "T7 promoter" {
		t.Errorf("writeHitsJSON() hits = %+v, want the T7 promoter hit", out.Hits)
	}
}
