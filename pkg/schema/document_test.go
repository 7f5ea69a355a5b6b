package schema

import "testing"

func TestNewDocumentValidation(t *testing.T) {
	if _, err := NewDocument(nil, []byte("x")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromFile("a.yaml"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDocumentRawIsACopy(t *testing.T) {
	raw := []byte("metadata: {}")
	doc := MustNewDocument(SourceFromFile("a.yaml"), raw)

	raw[0] = '#'
	got := doc.Raw()
	if got[0] != 'm' {
		t.Fatal("document shares backing array with caller input")
	}

	got[0] = '#'
	if doc.Raw()[0] != 'm' {
		t.Fatal("Raw() exposes internal backing array")
	}
}

func TestSourceKinds(t *testing.T) {
	file := SourceFromFile("dir/../templates.yaml")
	if file.Kind() != SourceKindFile {
		t.Fatalf("kind = %s", file.Kind())
	}
	if file.Location() != "templates.yaml" {
		t.Fatalf("location = %s, want cleaned path", file.Location())
	}

	fsrc := SourceFromFS("fixtures/templates.yaml")
	if fsrc.Kind() != SourceKindFS {
		t.Fatalf("kind = %s", fsrc.Kind())
	}
	if fsrc.Location() != "fixtures/templates.yaml" {
		t.Fatalf("location = %s", fsrc.Location())
	}
}
