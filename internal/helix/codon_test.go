package helix

import "testing"

func Test_translate(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"simple",
			args{"ATGAAATTT"},
			"MKF",
		},
		{
			"lowercase",
			args{"atgaaattt"},
			"MKF",
		},
		{
			"stop codon",
			args{"ATGTAA"},
			"M*",
		},
		{
			"trailing partial codon dropped",
			args{"ATGAAATT"},
			"MK",
		},
		{
			"unknown codon",
			args{"ATGANG"},
			"MX",
		},
		{
			"empty",
			args{""},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.args.seq, standardTable()); got != tt.want {
				t.Errorf("translate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_codonTable_starts(t *testing.T) {
	std := standardTable()
	if !std.isStart("ATG") {
		t.Error("ATG should be a start codon in the standard table")
	}
	if std.isStart("GTG") {
		t.Error("GTG should not be a start codon in the standard table")
	}
	if !std.isStop("TAA") || !std.isStop("TAG") || !std.isStop("TGA") {
		t.Error("the standard table is missing a stop codon")
	}

	bact := bacterialTable()
	if !bact.isStart("GTG") || !bact.isStart("ATT") {
		t.Error("the bacterial table is missing an alternative start codon")
	}
	if bact.translateCodon("GTG") != 'V' {
		t.Error("GTG should still translate to valine in the bacterial table")
	}
}

func Test_findOrfs_forward(t *testing.T) {
	// ATG AAA TGA in frame 1
	orfs := findOrfs("ATGAAATGA", 2)

	if len(orfs) != 1 {
		t.Fatalf("findOrfs() found %d ORFs, want 1", len(orfs))
	}

	orf := orfs[0]
	if orf.Start != 0 || orf.End != 9 {
		t.Errorf("findOrfs() span = [%d:%d], want [0:9]", orf.Start, orf.End)
	}
	if orf.Frame != 1 {
		t.Errorf("findOrfs() frame = %d, want 1", orf.Frame)
	}
	if orf.Protein != "MK" {
		t.Errorf("findOrfs() protein = %s, want MK", orf.Protein)
	}
}

// an ORF on the reverse strand is remapped onto forward coordinates
func Test_findOrfs_reverse(t *testing.T) {
	seq := reverseComplement("ATGAAATGA")
	orfs := findOrfs(seq, 2)

	if len(orfs) != 1 {
		t.Fatalf("findOrfs() found %d ORFs, want 1", len(orfs))
	}

	orf := orfs[0]
	if orf.Frame != -1 {
		t.Errorf("findOrfs() frame = %d, want -1", orf.Frame)
	}
	if orf.Start != 0 || orf.End != 9 {
		t.Errorf("findOrfs() span = [%d:%d], want [0:9]", orf.Start, orf.End)
	}
	if orf.Protein != "MK" {
		t.Errorf("findOrfs() protein = %s, want MK", orf.Protein)
	}
}

// an ORF without a stop codon is not reported
func Test_findOrfs_noStop(t *testing.T) {
	if orfs := findOrfs("ATGAAAAAAAAA", 1); len(orfs) != 0 {
		t.Errorf("findOrfs() found %d ORFs without a stop codon, want 0", len(orfs))
	}
}

func Test_findOrfs_minLength(t *testing.T) {
	// the MK ORF is two amino acids, below a three aa floor
	if orfs := findOrfs("ATGAAATGA", 3); len(orfs) != 0 {
		t.Errorf("findOrfs() found %d ORFs below the length floor, want 0", len(orfs))
	}
}
