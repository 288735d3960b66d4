package catalog

import (
	"path/filepath"
	"testing"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

func TestResultFileRoundTrip(t *testing.T) {
	cards := []types.ProductCard{
		{Title: "Samsung Galaxy M31", Price: "₹15999", Rating: "4.4", Review: "specs", Image: "img", Dataset: "Flipkart Mobiles", MatchCount: 1},
		{Title: "Banarasi Silk Saree", Price: "₹1299", Rating: "N/A", Review: "blurb", Image: "img", Dataset: "Fashion Data", MatchCount: 1},
		{Title: "Printed Kurta", Price: "₹799", Rating: "N/A", Review: "blurb", Image: "img", Dataset: "Fashion Data", MatchCount: 1,
			Extra: map[string]string{"brand": "Anouk"}},
	}

	path := filepath.Join(t.TempDir(), "results.yaml")
	query := ResultQuery{Text: "saree under 2000", Dataset: "fashion"}
	cfg := ResultFileConfig{PerSourceResults: 3, MaxTotalResults: 15}

	if err := WriteResultFile(path, query, cfg, cards); err != nil {
		t.Fatalf("WriteResultFile: %v", err)
	}

	rf, err := ReadResultFile(path)
	if err != nil {
		t.Fatalf("ReadResultFile: %v", err)
	}

	if rf.Query != query {
		t.Errorf("Query = %+v, want %+v", rf.Query, query)
	}
	if rf.Config != cfg {
		t.Errorf("Config = %+v, want %+v", rf.Config, cfg)
	}
	if len(rf.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(rf.Results))
	}
	if rf.Results[2].Extra["brand"] != "Anouk" {
		t.Errorf("Extra not preserved: %v", rf.Results[2].Extra)
	}
	if rf.Summary.Total != 3 {
		t.Errorf("Summary.Total = %d, want 3", rf.Summary.Total)
	}
	if rf.Summary.ByDataset["Fashion Data"] != 2 || rf.Summary.ByDataset["Flipkart Mobiles"] != 1 {
		t.Errorf("ByDataset = %v", rf.Summary.ByDataset)
	}
	if rf.Summary.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestReadResultFileMissing(t *testing.T) {
	if _, err := ReadResultFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
