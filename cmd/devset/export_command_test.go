package main

import (
	"testing"
)

func TestExportXMPFromStdin(t *testing.T) {
	out, _, err := runCLI(t, []string{"export", "xmp"}, "", `{"exposure": 0.5, "contrast": 12}`)
	if err != nil {
		t.Fatalf("export xmp: %v", err)
	}
	requireContains(t, out, "<crs:Exposure2012>0.5000</crs:Exposure2012>")
	requireContains(t, out, "<crs:Contrast2012>12.0000</crs:Contrast2012>")
}

func TestExportXMPDenormalize(t *testing.T) {
	// Contrast2012 spans [-100, 100], so a normalized 0.5 lands on 50.
	out, _, err := runCLI(t, []string{"export", "xmp", "--denormalize"}, "", `{"Contrast2012": 0.5}`)
	if err != nil {
		t.Fatalf("export xmp --denormalize: %v", err)
	}
	requireContains(t, out, "<crs:Contrast2012>50.0000</crs:Contrast2012>")
}

func TestExportXMPUnknownSlider(t *testing.T) {
	if _, _, err := runCLI(t, []string{"export", "xmp"}, "", `{"nonsense": 1}`); err == nil {
		t.Fatal("expected unknown slider error")
	}
}
