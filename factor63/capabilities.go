package factor63

import "github.com/arbooker/factor63/internal/cpufeatures"

// Capabilities reports the host CPU features the Montgomery kernel's
// 64x64->128 multiplies can exploit. It is a diagnostic only: IsPrime and
// Factor behave identically regardless of what it reports.
func Capabilities() cpufeatures.Report {
	return cpufeatures.Detect()
}
