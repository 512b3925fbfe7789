package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/alexiusacademia/goroark/internal/roark"
)

func sheet(t *testing.T) Sheet {
	t.Helper()
	b := beam.New(beam.Spec{E: 200000, I: 8.3e7, L: 6000}, roark.Code{A: roark.Fixed, B: roark.Simple},
		beam.PointLoad{P: 20000, A: 2000, Label: "girder"},
		beam.PointLoad{P: 15000, A: 4000},
	)
	b.Name = "Propped cantilever"
	secs, err := b.Analyze()
	if err != nil {
		t.Fatal(err)
	}
	r, err := b.Reactions()
	if err != nil {
		t.Fatal(err)
	}
	return Sheet{Project: "Test", Beam: b, Sections: secs, Reactions: r}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sheet(t)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:min(buf.Len(), 16)])
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.pdf")
	if err := WritePDF(path, sheet(t)); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatal("empty pdf")
	}
}

func TestWriteNoBeam(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Sheet{}); err == nil {
		t.Fatal("expected an error without a beam")
	}
}
