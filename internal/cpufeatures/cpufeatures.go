// Package cpufeatures reports the host CPU capabilities the factor63
// Montgomery kernel benefits from, so callers can sanity-check observed
// per-call throughput against the machine they are actually running on.
package cpufeatures

import "github.com/klauspost/cpuid/v2"

// Report describes the carry-chain instruction support relevant to the
// 64x64->128 multiply and add-with-carry sequences the Montgomery kernel
// compiles down to (bits.Mul64/bits.Add64).
type Report struct {
	VendorString string
	BrandName    string
	ADX          bool // multi-precision add-with-carry (ADCX/ADOX)
	BMI2         bool // MULX, used for carry-free 64x64->128 multiplies
}

// Detect queries the running CPU once; it is cheap enough to call per
// process but callers that check it frequently should cache the result.
func Detect() Report {
	return Report{
		VendorString: cpuid.CPU.VendorString,
		BrandName:    cpuid.CPU.BrandName,
		ADX:          cpuid.CPU.Supports(cpuid.ADX),
		BMI2:         cpuid.CPU.Supports(cpuid.BMI2),
	}
}

// Accelerated reports whether the host exposes both instruction families
// the compiler can use to implement bits.Mul64/bits.Add64 without a
// software carry chain.
func (r Report) Accelerated() bool {
	return r.ADX && r.BMI2
}
