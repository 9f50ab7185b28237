package cpufeatures_test

import (
	"testing"

	"github.com/arbooker/factor63/internal/cpufeatures"
)

func TestDetectDoesNotPanic(t *testing.T) {
	r := cpufeatures.Detect()
	// Feature support is host-dependent; only the shape of the report is
	// checked here.
	_ = r.Accelerated()
	if r.VendorString == "" && r.BrandName == "" {
		t.Log("cpuid returned no vendor/brand strings; likely running in a restricted sandbox")
	}
}
