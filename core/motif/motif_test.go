package motif

import (
	"math"
	"testing"

	"yamscan-core/alphabet"
)

func TestNewPinsAmbiguityRow(t *testing.T) {
	m := New("test", 3)
	if m.Size != 3 || len(m.PWM) != 3 || len(m.PWMRC) != 3 {
		t.Fatalf("New() = %+v, want size 3 with matching PWM/PWMRC", m)
	}
	for i := 0; i < 3; i++ {
		if m.PWM[i][alphabet.NonStandard] != AmbiguityScore {
			t.Errorf("PWM[%d][NonStandard] = %d, want %d", i, m.PWM[i][alphabet.NonStandard], AmbiguityScore)
		}
		if m.PWMRC[i][alphabet.NonStandard] != AmbiguityScore {
			t.Errorf("PWMRC[%d][NonStandard] = %d, want %d", i, m.PWMRC[i][alphabet.NonStandard], AmbiguityScore)
		}
	}
}

func TestScoreUniform(t *testing.T) {
	// p == bkg with no pseudocount and a single site leaves log2(1)=0.
	got := Score(0.25, 0.25, 1, 0)
	if got != 0 {
		t.Fatalf("Score(0.25,0.25,1,0) = %d, want 0", got)
	}
}

func TestScoreAboveBackgroundIsPositive(t *testing.T) {
	got := Score(0.97, 0.25, 100, 0.1)
	if got <= 0 {
		t.Fatalf("Score with p>>bkg = %d, want positive", got)
	}
}

func TestScoreMatchesFormula(t *testing.T) {
	p, bkg, nsites, pseudo := 0.6, 0.2, 50.0, 0.2
	want := int32(math.Floor(PWMIntMultiplier * math.Log2((p*nsites+pseudo/4.0)/((nsites+pseudo)*bkg))))
	if got := Score(p, bkg, nsites, pseudo); got != want {
		t.Fatalf("Score() = %d, want %d", got, want)
	}
}

func TestSetColumnAndBuildReverseComplement(t *testing.T) {
	m := New("rc", 2)
	m.SetColumn(0, 10, 20, 30, 40) // A C G T
	m.SetColumn(1, 1, 2, 3, 4)
	m.BuildReverseComplement()

	// Position 0 of the RC mirrors position (size-1-0)=1 of the forward
	// matrix, complementing each base (A<-T, C<-G, G<-C, T<-A).
	if m.PWMRC[0][0] != 4 || m.PWMRC[0][1] != 3 || m.PWMRC[0][2] != 2 || m.PWMRC[0][3] != 1 {
		t.Errorf("PWMRC[0] = %v, want [4 3 2 1]", m.PWMRC[0])
	}
	if m.PWMRC[1][0] != 40 || m.PWMRC[1][1] != 30 || m.PWMRC[1][2] != 20 || m.PWMRC[1][3] != 10 {
		t.Errorf("PWMRC[1] = %v, want [40 30 20 10]", m.PWMRC[1])
	}
}

func TestFinalizeComputesMinMax(t *testing.T) {
	m := New("finalize", 2)
	m.SetColumn(0, -5, 3, 10, -1)
	m.SetColumn(1, 2, 2, 2, 2)
	m.Finalize()

	if m.Min != -5 {
		t.Errorf("Min = %d, want -5", m.Min)
	}
	if m.Max != 10 {
		t.Errorf("Max = %d, want 10", m.Max)
	}
	if m.MinScore != -5+2 {
		t.Errorf("MinScore = %d, want %d", m.MinScore, -5+2)
	}
	if m.MaxScore != 10+2 {
		t.Errorf("MaxScore = %d, want %d", m.MaxScore, 10+2)
	}
	if m.CDFOffset != int64(m.Min)*int64(m.Size) {
		t.Errorf("CDFOffset = %d, want %d", m.CDFOffset, int64(m.Min)*int64(m.Size))
	}
	if m.CDFMax != m.Max-m.Min {
		t.Errorf("CDFMax = %d, want %d", m.CDFMax, m.Max-m.Min)
	}
	wantCDFSize := int64(m.Size)*int64(m.CDFMax) + 1
	if m.CDFSize != wantCDFSize {
		t.Errorf("CDFSize = %d, want %d", m.CDFSize, wantCDFSize)
	}
}
